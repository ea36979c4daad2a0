package hermes

import (
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/parley/internal/conversations"
)

const (
	// SubjectRegistered is published once at startup.
	SubjectRegistered = "swarm.agent.parley.registered"
	// SubjectLoadFailed is published whenever the conversations file is missing or corrupt.
	SubjectLoadFailed = "swarm.parley.conversations.load_failed"
)

// Registration announces a running instance.
type Registration struct {
	InstanceID string `json:"instance_id"`
	Timestamp  string `json:"timestamp"`
	Host       string `json:"host"`
	Port       int    `json:"port"`
}

// LoadFailed reports a recovered conversations load failure.
type LoadFailed struct {
	InstanceID string `json:"instance_id"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Reason     string `json:"reason"`
	Error      string `json:"error,omitempty"`
}

type publisher interface {
	Publish(subject string, data any) error
}

// Events stamps outgoing events with the instance id. It satisfies
// conversations.Notifier.
type Events struct {
	pub        publisher
	instanceID string
	now        func() time.Time
}

// NewEvents wraps pub. An empty instanceID gets a fresh random one.
func NewEvents(pub publisher, instanceID string) *Events {
	if instanceID == "" {
		instanceID = uuid.NewString()
	}
	return &Events{pub: pub, instanceID: instanceID, now: time.Now}
}

func (e *Events) InstanceID() string {
	return e.instanceID
}

func (e *Events) Announce(host string, port int) error {
	return e.pub.Publish(SubjectRegistered, Registration{
		InstanceID: e.instanceID,
		Timestamp:  e.timestamp(),
		Host:       host,
		Port:       port,
	})
}

func (e *Events) NotifyLoadFailure(f conversations.LoadFailure) error {
	ev := LoadFailed{
		InstanceID: e.instanceID,
		Timestamp:  e.timestamp(),
		Path:       f.Path,
		Reason:     f.Reason,
	}
	if f.Err != nil {
		ev.Error = f.Err.Error()
	}
	return e.pub.Publish(SubjectLoadFailed, ev)
}

func (e *Events) timestamp() string {
	return e.now().UTC().Format(time.RFC3339)
}
