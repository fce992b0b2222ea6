// Package bot serves move requests over NATS. A worker subscribes to a
// subject and answers each analyzer position with the best moves.
package bot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/wordplay/analyzer"
	"github.com/domino14/wordplay/config"
	"github.com/domino14/wordplay/move"
)

const (
	// QueueGroup lets several workers share one subject.
	QueueGroup = "wordplay-workers"
	// HandleTimeout bounds the work done for a single request.
	HandleTimeout = 10 * time.Second
)

type Worker struct {
	an      *analyzer.Analyzer
	timeout time.Duration
}

func NewWorker(an *analyzer.Analyzer) *Worker {
	return &Worker{an: an, timeout: HandleTimeout}
}

func errorResponse(rack string, err error) []byte {
	data, _ := json.Marshal(analyzer.Result{Rack: rack, Error: err.Error()})
	return data
}

// Handle answers one request: a JSON analyzer position in, a JSON
// analyzer.Result out. Problems with the request are reported in the
// result's error field.
func (w *Worker) Handle(data []byte) []byte {
	p, err := analyzer.ParsePosition(data)
	if err != nil {
		return errorResponse("", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	moves, err := w.an.Run(ctx, p)
	if err != nil {
		log.Debug().Err(err).Str("rack", p.Rack).Msg("bad-request")
		return errorResponse(p.Rack, err)
	}
	res := analyzer.Result{
		Rack:  p.Rack,
		Moves: lo.Map(moves, func(m *move.Move, _ int) analyzer.JsonMove { return analyzer.MakeJsonMove(m) }),
	}
	if len(moves) > 0 {
		log.Info().Str("rack", p.Rack).Str("best", moves[0].ShortDescription()).Msg("generated-moves")
	}
	out, err := json.Marshal(res)
	if err != nil {
		return errorResponse(p.Rack, err)
	}
	return out
}

// Main connects to NATS, answers requests on the configured subject and
// returns once ctx is cancelled and in-flight requests have drained.
func Main(ctx context.Context, cfg *config.Config, w *Worker) error {
	nc, err := nats.Connect(cfg.GetString(config.ConfigNatsURL), nats.Name("wordplay-worker"))
	if err != nil {
		return err
	}
	channel := cfg.GetString(config.ConfigNatsChannel)
	_, err = nc.QueueSubscribe(channel, QueueGroup, func(m *nats.Msg) {
		log.Debug().Int("bytes", len(m.Data)).Msg("recv")
		if err := m.Respond(w.Handle(m.Data)); err != nil {
			log.Err(err).Msg("respond")
		}
	})
	if err != nil {
		nc.Close()
		return err
	}
	if err := nc.Flush(); err != nil {
		nc.Close()
		return err
	}
	if err := nc.LastError(); err != nil {
		nc.Close()
		return err
	}
	log.Info().Str("channel", channel).Msg("listening")

	<-ctx.Done()
	log.Info().Msg("draining")
	return nc.Drain()
}
