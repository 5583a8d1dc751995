package api

import (
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clforge/clforge/binder"
	"github.com/clforge/clforge/handler"
	"github.com/clforge/clforge/pkg/clientip"
	"github.com/clforge/clforge/pkg/validator"
	"github.com/clforge/clforge/pkg/verify"
)

type ppuRequest struct {
	PPU string `path:"ppu"`
}

type digitsRequest struct {
	Digits string `path:"digits"`
}

// ValidateRequest carries either a written RUT or a correlative and check
// character. RUT takes precedence when set.
type ValidateRequest struct {
	RUT      string `json:"rut"`
	Digits   string `json:"digits"`
	Verifier string `json:"verifier"`
}

// GenerateRequest asks for N RUTs with correlatives in [Min, Max]. Unset
// bounds fall back to the configured range; Seed makes the result
// reproducible.
type GenerateRequest struct {
	N    int    `json:"n"`
	Min  *int64 `json:"min"`
	Max  *int64 `json:"max"`
	Seed *int64 `json:"seed"`
}

type NormalizedResponse struct {
	PPU        string `json:"ppu"`
	Normalized string `json:"normalized"`
}

type NumericResponse struct {
	PPU     string `json:"ppu"`
	Numeric uint32 `json:"numeric"`
}

type VerifierResponse struct {
	Digits   string          `json:"digits"`
	Verifier verify.Verifier `json:"verifier"`
	RUT      string          `json:"rut"`
}

type ValidateResponse struct {
	Valid bool   `json:"valid"`
	RUT   string `json:"rut"`
}

// budgetKey charges generation to the client address.
func budgetKey(ctx handler.Context) string {
	if ip := clientip.FromContext(ctx); ip != "" {
		return ip
	}
	return "unknown"
}

func pathBinder() handler.Bind {
	return binder.Path(chi.URLParam)
}

func (a *API) getPPU() http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, req ppuRequest) handler.Response {
		p, err := verify.ParsePPU(req.PPU)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(p.View())
	},
		handler.WithBinders[handler.Context, ppuRequest](pathBinder()),
		handler.WithErrorHandler[handler.Context, ppuRequest](a.errorHandler()),
	)
}

func (a *API) getNormalized() http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, req ppuRequest) handler.Response {
		normalized, err := verify.NormalizePPU(req.PPU)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(NormalizedResponse{PPU: req.PPU, Normalized: normalized})
	},
		handler.WithBinders[handler.Context, ppuRequest](pathBinder()),
		handler.WithErrorHandler[handler.Context, ppuRequest](a.errorHandler()),
	)
}

func (a *API) getNumeric() http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, req ppuRequest) handler.Response {
		n, err := verify.PPUToNumeric(req.PPU)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(NumericResponse{PPU: req.PPU, Numeric: n})
	},
		handler.WithBinders[handler.Context, ppuRequest](pathBinder()),
		handler.WithErrorHandler[handler.Context, ppuRequest](a.errorHandler()),
	)
}

func (a *API) getVerifier() http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, req digitsRequest) handler.Response {
		n, err := verify.ParseNumeric(req.Digits)
		if err != nil {
			return handler.Error(err)
		}
		rut, err := verify.NewRUT(n)
		if err != nil {
			return handler.Error(err)
		}
		return handler.JSON(VerifierResponse{Digits: req.Digits, Verifier: rut.Verifier, RUT: rut.String()})
	},
		handler.WithBinders[handler.Context, digitsRequest](pathBinder()),
		handler.WithErrorHandler[handler.Context, digitsRequest](a.errorHandler()),
	)
}

func (a *API) validateRUT() http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, req ValidateRequest) handler.Response {
		if req.RUT != "" {
			rut, err := verify.ParseRUT(req.RUT)
			if err != nil {
				return handler.Error(err)
			}
			return handler.JSON(ValidateResponse{Valid: rut.Valid(), RUT: rut.String()})
		}

		if err := validator.Apply(
			validator.RequiredString("digits", req.Digits),
			validator.RequiredString("verifier", req.Verifier),
		); err != nil {
			return handler.Error(err)
		}
		ok, err := verify.ValidateRUTString(req.Digits, req.Verifier)
		if err != nil {
			return handler.Error(err)
		}
		n, _ := verify.ParseNumeric(req.Digits)
		v, _ := verify.ParseVerifier(req.Verifier)
		return handler.JSON(ValidateResponse{Valid: ok, RUT: verify.RUT{Correlative: n, Verifier: v}.String()})
	},
		handler.WithBinders[handler.Context, ValidateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](a.errorHandler()),
	)
}

func (a *API) generateRUTs() http.HandlerFunc {
	return handler.Wrap(func(ctx handler.Context, req GenerateRequest) handler.Response {
		minimum, maximum := a.settings.GenerateMin, a.settings.GenerateMax
		if req.Min != nil {
			minimum = *req.Min
		}
		if req.Max != nil {
			maximum = *req.Max
		}

		// An inverted range is reported before any count or bound problem.
		if minimum > maximum {
			return handler.Error(&verify.Error{Kind: verify.KindInvalidRange, Min: minimum, Max: maximum})
		}
		if err := validator.Apply(
			validator.NumRange("n", req.N, 1, a.settings.GenerateMaxCount),
			validator.MinNum("min", minimum, 0),
			validator.MaxNum[int64]("max", maximum, math.MaxUint32),
		); err != nil {
			return handler.Error(err)
		}

		opts := []verify.GenerateOption{verify.WithLimit(a.settings.GenerateMaxCount)}
		if req.Seed != nil {
			opts = append(opts, verify.WithSeed(*req.Seed))
		}
		ruts, err := verify.Generate(req.N, minimum, maximum, opts...)
		if err != nil {
			return handler.Error(err)
		}
		if a.budget != nil {
			res, err := a.budget.Take(ctx, budgetKey(ctx), len(ruts))
			if err != nil {
				return handler.Error(err)
			}
			res.SetHeaders(ctx.ResponseWriter().Header())
			if !res.Allowed {
				return handler.Error(handler.ErrTooManyRequests)
			}
		}
		a.metrics.AddGenerated(len(ruts))

		return handler.JSON(ruts,
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"count": len(ruts), "min": minimum, "max": maximum}),
		)
	},
		handler.WithBinders[handler.Context, GenerateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, GenerateRequest](a.errorHandler()),
	)
}
