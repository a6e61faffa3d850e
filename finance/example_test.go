package finance_test

import (
	"fmt"

	"github.com/zephyrtronium/calc/finance"
)

func ExampleFormatMoney() {
	fmt.Println(finance.FormatMoney(1234567.5))
	fmt.Println(finance.FormatMoney(-0.2))
	// Output:
	// 1,234,568원
	// 0원
}
