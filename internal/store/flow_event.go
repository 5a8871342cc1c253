package store

import (
	"context"
	"fmt"

	"mentora/ent"
	"mentora/ent/flowevent"
)

func (r *eventRepo) AppendFlowEvent(ctx context.Context, data FlowEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.FlowEvent.Create().
		SetSequence(seqNum).
		SetFlowID(data.FlowID).
		SetFlow(data.Flow).
		SetAction(data.Action).
		SetStep(data.Step).
		SetDetail(data.Detail).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save flow event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentFlowEvents(ctx context.Context, opts QueryOpts) ([]FlowEvent, error) {
	q := r.client.FlowEvent.Query().
		Order(ent.Desc(flowevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(flowevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(flowevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(flowevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(flowevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query flow events: %w", err)
	}

	events := make([]FlowEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, FlowEvent{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			FlowEventData: FlowEventData{
				FlowID:       row.FlowID,
				Flow:         row.Flow,
				Action:       row.Action,
				Step:         row.Step,
				Detail:       row.Detail,
				DurationSecs: row.DurationSecs,
			},
		})
	}
	return events, nil
}
