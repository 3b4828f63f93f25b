package responder

import (
	"context"
	"time"

	"research-agent-be/internal/pkg/logger"
	"research-agent-be/pkg/agent/intent"
	"research-agent-be/pkg/agent/response"
	"research-agent-be/pkg/agent/state"
	"research-agent-be/pkg/knowledge"
	"research-agent-be/pkg/store"
)

// Result is what a single turn produced.
type Result struct {
	Reply        string
	Status       string
	Intent       intent.Intent
	Stage        string
	DetailLevel  knowledge.Level
	CompanyFound bool
}

type handlerFunc func(r *Responder, session *store.Session) Result

// Responder turns one line of user text into one reply, mutating the session.
type Responder struct {
	kb         *knowledge.Store
	classifier *intent.Classifier
	state      *state.Manager
	logger     logger.ILogger
	delay      time.Duration
	handlers   map[intent.Intent]handlerFunc
}

// NewResponder wires the default handlers. delay is the cosmetic pause before
// each turn; zero disables it.
func NewResponder(kb *knowledge.Store, classifier *intent.Classifier, stateManager *state.Manager, log logger.ILogger, delay time.Duration) *Responder {
	return &Responder{
		kb:         kb,
		classifier: classifier,
		state:      stateManager,
		logger:     log,
		delay:      delay,
		handlers: map[intent.Intent]handlerFunc{
			intent.IntentFullReport: (*Responder).fullReport,
			intent.IntentRiskUpdate: (*Responder).riskUpdate,
			intent.IntentRecall:     (*Responder).recall,
			intent.IntentFallback:   (*Responder).fallback,
		},
	}
}

// Respond processes one turn. The only error is ctx ending during the pause,
// in which case the session is left untouched.
func (r *Responder) Respond(ctx context.Context, session *store.Session, text string) (Result, error) {
	if err := r.pause(ctx); err != nil {
		return Result{}, err
	}

	var res Result
	if session.Stage != store.StageRefining {
		res = r.initial(session, text)
	} else {
		it := r.classifier.Classify(text)
		h, ok := r.handlers[it]
		if !ok {
			h = (*Responder).fallback
		}
		res = h(r, session)
		res.Intent = it
		res.Status = response.StatusRefining
	}

	res.Stage = session.Stage
	res.DetailLevel = session.DetailLevel

	r.logger.Info("Responder", "Turn handled", map[string]interface{}{
		"session_id":    session.ID,
		"intent":        string(res.Intent),
		"company":       session.TargetCompany,
		"detail_level":  string(session.DetailLevel),
		"company_found": res.CompanyFound,
	})
	return res, nil
}

func (r *Responder) initial(session *store.Session, company string) Result {
	r.state.TransitionToRefining(session, company)

	entry, found := r.kb.Resolve(company)
	if !found {
		r.logger.Debug("Responder", "Unknown company, using default report", map[string]interface{}{
			"company": company,
			"default": r.kb.DefaultKey(),
		})
	}

	return Result{
		Reply:        response.Initial(company, entry.Text(knowledge.LevelShort)),
		Status:       response.StatusAnalyzing(company),
		Intent:       intent.IntentInitial,
		CompanyFound: found,
	}
}

func (r *Responder) fullReport(session *store.Session) Result {
	r.state.SetDetailLevel(session, knowledge.LevelLong)
	entry, found := r.kb.Resolve(session.TargetCompany)
	return Result{Reply: response.FullReport(entry.Long), CompanyFound: found}
}

// riskUpdate ignores the company and level.
func (r *Responder) riskUpdate(session *store.Session) Result {
	_, found := r.kb.Resolve(session.TargetCompany)
	return Result{Reply: response.RiskUpdate, CompanyFound: found}
}

func (r *Responder) recall(session *store.Session) Result {
	entry, found := r.kb.Resolve(session.TargetCompany)
	level := session.DetailLevel
	return Result{Reply: response.Recall(level, entry.Text(level)), CompanyFound: found}
}

func (r *Responder) fallback(session *store.Session) Result {
	_, found := r.kb.Resolve(session.TargetCompany)
	return Result{Reply: response.Fallback, CompanyFound: found}
}

func (r *Responder) pause(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
