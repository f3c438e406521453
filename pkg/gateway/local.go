package gateway

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/goliatone/go-vesselcalc/pkg/form"
	"github.com/goliatone/go-vesselcalc/pkg/result"
	"github.com/goliatone/go-vesselcalc/pkg/taxonomy"
)

// Local computes results in process with simplified formulas.
type Local struct {
	cfg config
}

var _ Gateway = (*Local)(nil)

// NewLocal returns a local gateway. Selections are checked against the
// default catalog unless WithCatalog is given.
func NewLocal(options ...Option) *Local {
	cfg := newConfig(options)
	if cfg.catalog == nil {
		cfg.catalog = taxonomy.Default()
	}
	return &Local{cfg: cfg}
}

// Calculate validates the selection and evaluates the formulas.
func (g *Local) Calculate(ctx context.Context, req form.Request) (result.Result, error) {
	if err := ctx.Err(); err != nil {
		return result.Result{}, Unreachable(err)
	}
	if _, ok := g.cfg.catalog.Category(req.VesselType); !ok {
		return result.Result{}, Rejected(fmt.Sprintf("unknown vessel type %q", req.VesselType))
	}
	if _, ok := g.cfg.catalog.SubType(req.VesselType, req.SubType); !ok {
		return result.Result{}, Rejected(fmt.Sprintf("unknown sub type %q for vessel type %q", req.SubType, req.VesselType))
	}

	out := Evaluate(req)
	g.cfg.logger.Debug("local calculation completed",
		zap.String("vessel_type", req.VesselType),
		zap.String("sub_type", req.SubType),
	)
	return out, nil
}

// Evaluate applies the local formulas to req. Empty or unparsable values
// count as zero; a zero gearbox ratio counts as one.
func Evaluate(req form.Request) result.Result {
	loa := req.Float(form.KeyLOA, 0)
	width := req.Float(form.KeyWidth, 0)
	draft := req.Float(form.KeyDraft, 0)
	diameter := loa + width

	speed := req.Float(form.KeyNumEngines, 0) * req.Float(form.KeyEnginePower, 0) / req.Float(form.KeyGearboxRatio, 1)

	return result.New(
		result.Group{Key: result.GroupVesselCharacteristics, Metrics: []result.Metric{
			metric("loa", loa),
			metric("width", width),
			metric("draft", draft),
		}},
		result.Group{Key: result.GroupPropulsionParameters, Metrics: []result.Metric{
			metric("diameter", diameter),
			metric("pitch", diameter/2),
			metric("bar", draft/3),
		}},
		result.Group{Key: result.GroupPerformance, Metrics: []result.Metric{
			metric("predicted_speed", speed),
			metric("predicted_bollard_pull", req.Float(form.KeyBollardPull, 0)-10),
		}},
	)
}

func metric(key string, value float64) result.Metric {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return result.Metric{Key: key}
	}
	return result.Metric{Key: key, Value: value}
}
