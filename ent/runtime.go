// Code generated by ent, DO NOT EDIT.

package ent

import (
	"mentora/ent/card"
	"mentora/ent/deck"
	"mentora/ent/flowevent"
	"mentora/ent/llmrequestevent"
	"mentora/ent/reviewevent"
	"mentora/ent/schema"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardFields := schema.Card{}.Fields()
	_ = cardFields
	// cardDescCardID is the schema descriptor for card_id field.
	cardDescCardID := cardFields[0].Descriptor()
	// card.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	card.CardIDValidator = cardDescCardID.Validators[0].(func(string) error)
	// cardDescDeck is the schema descriptor for deck field.
	cardDescDeck := cardFields[1].Descriptor()
	// card.DeckValidator is a validator for the "deck" field. It is called by the builders before save.
	card.DeckValidator = cardDescDeck.Validators[0].(func(string) error)
	// cardDescFront is the schema descriptor for front field.
	cardDescFront := cardFields[2].Descriptor()
	// card.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	card.FrontValidator = cardDescFront.Validators[0].(func(string) error)
	// cardDescBack is the schema descriptor for back field.
	cardDescBack := cardFields[3].Descriptor()
	// card.BackValidator is a validator for the "back" field. It is called by the builders before save.
	card.BackValidator = cardDescBack.Validators[0].(func(string) error)
	// cardDescReviewCount is the schema descriptor for review_count field.
	cardDescReviewCount := cardFields[6].Descriptor()
	// card.DefaultReviewCount holds the default value on creation for the review_count field.
	card.DefaultReviewCount = cardDescReviewCount.Default.(int)
	deckFields := schema.Deck{}.Fields()
	_ = deckFields
	// deckDescName is the schema descriptor for name field.
	deckDescName := deckFields[0].Descriptor()
	// deck.NameValidator is a validator for the "name" field. It is called by the builders before save.
	deck.NameValidator = deckDescName.Validators[0].(func(string) error)
	// deckDescDescription is the schema descriptor for description field.
	deckDescDescription := deckFields[1].Descriptor()
	// deck.DefaultDescription holds the default value on creation for the description field.
	deck.DefaultDescription = deckDescDescription.Default.(string)
	// deckDescCreatedAt is the schema descriptor for created_at field.
	deckDescCreatedAt := deckFields[2].Descriptor()
	// deck.DefaultCreatedAt holds the default value on creation for the created_at field.
	deck.DefaultCreatedAt = deckDescCreatedAt.Default.(func() time.Time)
	floweventMixin := schema.FlowEvent{}.Mixin()
	floweventMixinFields0 := floweventMixin[0].Fields()
	_ = floweventMixinFields0
	floweventFields := schema.FlowEvent{}.Fields()
	_ = floweventFields
	// floweventDescTimestamp is the schema descriptor for timestamp field.
	floweventDescTimestamp := floweventMixinFields0[1].Descriptor()
	// flowevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	flowevent.DefaultTimestamp = floweventDescTimestamp.Default.(func() time.Time)
	// floweventDescFlowID is the schema descriptor for flow_id field.
	floweventDescFlowID := floweventFields[0].Descriptor()
	// flowevent.FlowIDValidator is a validator for the "flow_id" field. It is called by the builders before save.
	flowevent.FlowIDValidator = floweventDescFlowID.Validators[0].(func(string) error)
	// floweventDescFlow is the schema descriptor for flow field.
	floweventDescFlow := floweventFields[1].Descriptor()
	// flowevent.FlowValidator is a validator for the "flow" field. It is called by the builders before save.
	flowevent.FlowValidator = floweventDescFlow.Validators[0].(func(string) error)
	// floweventDescAction is the schema descriptor for action field.
	floweventDescAction := floweventFields[2].Descriptor()
	// flowevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	flowevent.ActionValidator = floweventDescAction.Validators[0].(func(string) error)
	// floweventDescStep is the schema descriptor for step field.
	floweventDescStep := floweventFields[3].Descriptor()
	// flowevent.DefaultStep holds the default value on creation for the step field.
	flowevent.DefaultStep = floweventDescStep.Default.(int)
	// floweventDescDetail is the schema descriptor for detail field.
	floweventDescDetail := floweventFields[4].Descriptor()
	// flowevent.DefaultDetail holds the default value on creation for the detail field.
	flowevent.DefaultDetail = floweventDescDetail.Default.(string)
	// floweventDescDurationSecs is the schema descriptor for duration_secs field.
	floweventDescDurationSecs := floweventFields[5].Descriptor()
	// flowevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	flowevent.DefaultDurationSecs = floweventDescDurationSecs.Default.(int)
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
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescSessionID is the schema descriptor for session_id field.
	revieweventDescSessionID := revieweventFields[0].Descriptor()
	// reviewevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	reviewevent.SessionIDValidator = revieweventDescSessionID.Validators[0].(func(string) error)
	// revieweventDescCardID is the schema descriptor for card_id field.
	revieweventDescCardID := revieweventFields[1].Descriptor()
	// reviewevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewevent.CardIDValidator = revieweventDescCardID.Validators[0].(func(string) error)
	// revieweventDescDeck is the schema descriptor for deck field.
	revieweventDescDeck := revieweventFields[2].Descriptor()
	// reviewevent.DefaultDeck holds the default value on creation for the deck field.
	reviewevent.DefaultDeck = revieweventDescDeck.Default.(string)
	// revieweventDescResponseTimeSecs is the schema descriptor for response_time_secs field.
	revieweventDescResponseTimeSecs := revieweventFields[5].Descriptor()
	// reviewevent.DefaultResponseTimeSecs holds the default value on creation for the response_time_secs field.
	reviewevent.DefaultResponseTimeSecs = revieweventDescResponseTimeSecs.Default.(int)
}
