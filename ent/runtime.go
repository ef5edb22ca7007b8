// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/trio-sh/academy-builder-sub001/ent/assessmentevent"
	"github.com/trio-sh/academy-builder-sub001/ent/llmrequestevent"
	"github.com/trio-sh/academy-builder-sub001/ent/resultevent"
	"github.com/trio-sh/academy-builder-sub001/ent/schema"
	"github.com/trio-sh/academy-builder-sub001/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescAssessmentID is the schema descriptor for assessment_id field.
	assessmenteventDescAssessmentID := assessmenteventFields[0].Descriptor()
	// assessmentevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	assessmentevent.AssessmentIDValidator = assessmenteventDescAssessmentID.Validators[0].(func(string) error)
	// assessmenteventDescAction is the schema descriptor for action field.
	assessmenteventDescAction := assessmenteventFields[1].Descriptor()
	// assessmentevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	assessmentevent.ActionValidator = assessmenteventDescAction.Validators[0].(func(string) error)
	// assessmenteventDescScenesCompleted is the schema descriptor for scenes_completed field.
	assessmenteventDescScenesCompleted := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultScenesCompleted holds the default value on creation for the scenes_completed field.
	assessmentevent.DefaultScenesCompleted = assessmenteventDescScenesCompleted.Default.(int)
	// assessmenteventDescChallengesScored is the schema descriptor for challenges_scored field.
	assessmenteventDescChallengesScored := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultChallengesScored holds the default value on creation for the challenges_scored field.
	assessmentevent.DefaultChallengesScored = assessmenteventDescChallengesScored.Default.(int)
	// assessmenteventDescDurationSecs is the schema descriptor for duration_secs field.
	assessmenteventDescDurationSecs := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	assessmentevent.DefaultDurationSecs = assessmenteventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescAssessmentID is the schema descriptor for assessment_id field.
	resulteventDescAssessmentID := resulteventFields[0].Descriptor()
	// resultevent.AssessmentIDValidator is a validator for the "assessment_id" field. It is called by the builders before save.
	resultevent.AssessmentIDValidator = resulteventDescAssessmentID.Validators[0].(func(string) error)
	// resulteventDescSceneID is the schema descriptor for scene_id field.
	resulteventDescSceneID := resulteventFields[1].Descriptor()
	// resultevent.SceneIDValidator is a validator for the "scene_id" field. It is called by the builders before save.
	resultevent.SceneIDValidator = resulteventDescSceneID.Validators[0].(func(string) error)
	// resulteventDescKind is the schema descriptor for kind field.
	resulteventDescKind := resulteventFields[2].Descriptor()
	// resultevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	resultevent.KindValidator = resulteventDescKind.Validators[0].(func(string) error)
	// resulteventDescDimension is the schema descriptor for dimension field.
	resulteventDescDimension := resulteventFields[3].Descriptor()
	// resultevent.DimensionValidator is a validator for the "dimension" field. It is called by the builders before save.
	resultevent.DimensionValidator = resulteventDescDimension.Validators[0].(func(string) error)
	// resulteventDescRawResponse is the schema descriptor for raw_response field.
	resulteventDescRawResponse := resulteventFields[6].Descriptor()
	// resultevent.DefaultRawResponse holds the default value on creation for the raw_response field.
	resultevent.DefaultRawResponse = resulteventDescRawResponse.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
