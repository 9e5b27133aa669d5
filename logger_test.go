package pipelinearchive

import "testing"

func TestNewRecorderWithDefaultOptionsHasInnerState(t *testing.T) {
	r := NewRecorder()
	defer r.RecordEnd()
	if r.inner == nil {
		t.Fatal("NewRecorder returned a Recorder with no inner state")
	}
}
