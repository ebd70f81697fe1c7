package amqp

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/budget-forecaster/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const RunCompletedType = "forecast.run_completed"

// RunCompletedMessage é o corpo publicado ao final de cada execução
type RunCompletedMessage struct {
	Type        string             `json:"type"`
	Run         domain.ForecastRun `json:"run"`
	PublishedAt time.Time          `json:"published_at"`
}

func NewRunCompletedMessage(run domain.ForecastRun, now time.Time) *RunCompletedMessage {
	return &RunCompletedMessage{
		Type:        RunCompletedType,
		Run:         run,
		PublishedAt: now.UTC(),
	}
}

func (m *RunCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RunCompletedMessageFromJSON(data []byte) (*RunCompletedMessage, error) {
	var msg RunCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
