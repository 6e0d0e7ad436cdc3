package main

import (
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"
)

func (a *App) initLoki() error {
	identifiers := map[string]string{
		"instanceId": a.Name,
	}

	promTail, err := promtail.NewJSONv1Client(a.Config.LokiAddr, identifiers)
	if err != nil {
		return err
	}

	a.PromTail = promTail
	a.Logger.AddHook(&promTailHook{client: promTail})

	return nil
}

type promTailHook struct {
	client promtail.Client
}

func (h *promTailHook) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
	}
}

func (h *promTailHook) Fire(e *logrus.Entry) error {
	switch e.Level {
	case logrus.ErrorLevel:
		h.client.Logf(promtail.Error, "%s", e.Message)
	case logrus.WarnLevel:
		h.client.Logf(promtail.Warn, "%s", e.Message)
	default:
		h.client.Logf(promtail.Info, "%s", e.Message)
	}

	return nil
}
