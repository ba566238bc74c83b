package testutil

import (
	"fmt"

	"github.com/arthur-debert/scrubjay/pkg/types"
)

// RecordingReporter is a types.Reporter that stores every notice as a
// short event string, e.g. "link remove .vimrc absent".
type RecordingReporter struct {
	Events []string
}

func (r *RecordingReporter) PackageStarted(action types.Action, packagePath, targetRoot string) {
	r.Events = append(r.Events, fmt.Sprintf("start %s", action))
}

func (r *RecordingReporter) HookStarted(event types.HookEvent, invocation types.HookInvocation) {
	r.Events = append(r.Events, fmt.Sprintf("hook %s %s", event, invocation.Kind))
}

func (r *RecordingReporter) LinkProcessed(packagePath string, op types.LinkOp, link types.Link, outcome types.LinkOutcome) {
	r.Events = append(r.Events, fmt.Sprintf("link %s %s %s", op, link.RelPath, outcome))
}

func (r *RecordingReporter) PackageFinished(action types.Action, packagePath string) {
	r.Events = append(r.Events, fmt.Sprintf("finish %s", action))
}
