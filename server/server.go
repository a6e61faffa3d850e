// Package server implements calc's HTTP JSON API.
package server

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/history"
	"github.com/zephyrtronium/calc/plot"
)

// MaxPlotSize bounds the width and height of plot requests.
const MaxPlotSize = 4096

// Server serves expression evaluation, formatting, history, and plotting.
type Server struct {
	app   *fiber.App
	hist  *history.Store
	angle calc.AngleMode
}

// New creates a server recording evaluations in hist. Requests that do not
// name an angle mode use angle.
func New(hist *history.Store, angle calc.AngleMode) *Server {
	srv := &Server{hist: hist, angle: angle}
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
	})

	app.Post("/v1/eval", srv.eval)
	app.Get("/v1/format", srv.format)

	app.Get("/v1/history", srv.listHistory)
	app.Delete("/v1/history", srv.clearHistory)
	app.Get("/v1/history/:t", srv.getHistory)
	app.Delete("/v1/history/:t", srv.deleteHistory)

	app.Get("/v1/plot", srv.plot)

	srv.app = app
	return srv
}

// Listen starts the HTTP server on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// errorKind names the class of an evaluation error for clients.
func errorKind(err error) string {
	var (
		lex  *calc.LexError
		pe   calc.ParseError
		ee   *calc.EvalError
		fe   *calc.FactorialError
		nf   *calc.NotFiniteError
		mode *calc.AngleModeError
	)
	switch {
	case errors.Is(err, calc.ErrEmpty):
		return "empty"
	case errors.As(err, &lex):
		return "lex"
	case errors.As(err, &pe):
		return "syntax"
	case errors.As(err, &ee):
		return "eval"
	case errors.As(err, &fe):
		return "factorial"
	case errors.As(err, &nf):
		return "not-finite"
	case errors.As(err, &mode):
		return "angle"
	default:
		return "request"
	}
}

func fail(c *fiber.Ctx, status int, kind, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"kind":    kind,
			"message": msg,
		},
	})
}

func (s *Server) angleOf(name string) (calc.AngleMode, error) {
	if name == "" {
		return s.angle, nil
	}
	return calc.ParseAngleMode(name)
}

type evalRequest struct {
	Expr  string `json:"expr"`
	Angle string `json:"angle"`
}

type evalResponse struct {
	Value   float64        `json:"value"`
	Display string         `json:"display"`
	Entry   *history.Entry `json:"entry,omitempty"`
}

func (s *Server) eval(c *fiber.Ctx) error {
	var req evalRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "request", "invalid request body: "+err.Error())
	}
	mode, err := s.angleOf(req.Angle)
	if err != nil {
		return fail(c, 400, errorKind(err), err.Error())
	}
	r, err := calc.EvalString(req.Expr, calc.Angle(mode))
	if err != nil {
		return fail(c, 400, errorKind(err), err.Error())
	}
	resp := evalResponse{Value: r, Display: calc.Format(r)}
	e, err := s.hist.Push(req.Expr + " = " + resp.Display)
	if err != nil {
		return fail(c, 500, "history", err.Error())
	}
	resp.Entry = &e
	return c.JSON(resp)
}

func (s *Server) format(c *fiber.Ctx) error {
	q := c.Query("x")
	x, err := strconv.ParseFloat(q, 64)
	if err != nil {
		return fail(c, 400, "request", "x must be a number: "+strconv.Quote(q))
	}
	return c.JSON(fiber.Map{"display": calc.Format(x)})
}

func (s *Server) listHistory(c *fiber.Ctx) error {
	hist := s.hist.List()
	if hist == nil {
		hist = []history.Entry{}
	}
	return c.JSON(fiber.Map{"entries": hist})
}

func (s *Server) clearHistory(c *fiber.Ctx) error {
	if err := s.hist.Clear(); err != nil {
		return fail(c, 500, "history", err.Error())
	}
	return c.SendStatus(204)
}

func historyTime(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("t"), 10, 64)
}

func (s *Server) getHistory(c *fiber.Ctx) error {
	t, err := historyTime(c)
	if err != nil {
		return fail(c, 400, "request", "invalid entry time")
	}
	e, ok := s.hist.Get(t)
	if !ok {
		return fail(c, 404, "history", "no entry at "+strconv.FormatInt(t, 10))
	}
	return c.JSON(fiber.Map{"entry": e, "input": e.Input()})
}

func (s *Server) deleteHistory(c *fiber.Ctx) error {
	t, err := historyTime(c)
	if err != nil {
		return fail(c, 400, "request", "invalid entry time")
	}
	ok, err := s.hist.Delete(t)
	if err != nil {
		return fail(c, 500, "history", err.Error())
	}
	if !ok {
		return fail(c, 404, "history", "no entry at "+strconv.FormatInt(t, 10))
	}
	return c.SendStatus(204)
}

func (s *Server) plot(c *fiber.Ctx) error {
	v := plot.DefaultView()
	if f := c.Query("f"); f != "" {
		v.Func = f
	}
	v.Scale = c.QueryFloat("scale", v.Scale)
	v.OffX = c.QueryFloat("offx", 0)
	v.OffY = c.QueryFloat("offy", 0)
	w := c.QueryInt("w", 600)
	h := c.QueryInt("h", 400)
	if w <= 0 || h <= 0 || w > MaxPlotSize || h > MaxPlotSize {
		return fail(c, 400, "request", "plot size out of range")
	}
	if !(v.Scale >= plot.MinScale && v.Scale <= plot.MaxScale) {
		return fail(c, 400, "request", "scale out of range")
	}
	if math.IsNaN(v.OffX+v.OffY) || math.IsInf(v.OffX+v.OffY, 0) {
		return fail(c, 400, "request", "offsets must be finite")
	}
	mode, err := s.angleOf(c.Query("angle"))
	if err != nil {
		return fail(c, 400, errorKind(err), err.Error())
	}
	segs := plot.Sample(v, w, h, calc.Angle(mode))
	if segs == nil {
		segs = []plot.Segment{}
	}
	return c.JSON(fiber.Map{"view": v, "segments": segs})
}
