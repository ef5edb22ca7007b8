// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trio-sh/academy-builder-sub001/ent/assessmentevent"
	"github.com/trio-sh/academy-builder-sub001/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdate) SetAssessmentID(v string) *AssessmentEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAssessmentID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdate) SetAction(v string) *AssessmentEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAction(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenesCompleted sets the "scenes_completed" field.
func (_u *AssessmentEventUpdate) SetScenesCompleted(v int) *AssessmentEventUpdate {
	_u.mutation.ResetScenesCompleted()
	_u.mutation.SetScenesCompleted(v)
	return _u
}

// SetNillableScenesCompleted sets the "scenes_completed" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableScenesCompleted(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetScenesCompleted(*v)
	}
	return _u
}

// AddScenesCompleted adds value to the "scenes_completed" field.
func (_u *AssessmentEventUpdate) AddScenesCompleted(v int) *AssessmentEventUpdate {
	_u.mutation.AddScenesCompleted(v)
	return _u
}

// SetChallengesScored sets the "challenges_scored" field.
func (_u *AssessmentEventUpdate) SetChallengesScored(v int) *AssessmentEventUpdate {
	_u.mutation.ResetChallengesScored()
	_u.mutation.SetChallengesScored(v)
	return _u
}

// SetNillableChallengesScored sets the "challenges_scored" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableChallengesScored(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetChallengesScored(*v)
	}
	return _u
}

// AddChallengesScored adds value to the "challenges_scored" field.
func (_u *AssessmentEventUpdate) AddChallengesScored(v int) *AssessmentEventUpdate {
	_u.mutation.AddChallengesScored(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdate) SetDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableDurationSecs(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdate) AddDurationSecs(v int) *AssessmentEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenesCompleted(); ok {
		_spec.SetField(assessmentevent.FieldScenesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenesCompleted(); ok {
		_spec.AddField(assessmentevent.FieldScenesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChallengesScored(); ok {
		_spec.SetField(assessmentevent.FieldChallengesScored, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChallengesScored(); ok {
		_spec.AddField(assessmentevent.FieldChallengesScored, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *AssessmentEventUpdateOne) SetAssessmentID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAssessmentID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdateOne) SetAction(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAction(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScenesCompleted sets the "scenes_completed" field.
func (_u *AssessmentEventUpdateOne) SetScenesCompleted(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetScenesCompleted()
	_u.mutation.SetScenesCompleted(v)
	return _u
}

// SetNillableScenesCompleted sets the "scenes_completed" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableScenesCompleted(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetScenesCompleted(*v)
	}
	return _u
}

// AddScenesCompleted adds value to the "scenes_completed" field.
func (_u *AssessmentEventUpdateOne) AddScenesCompleted(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddScenesCompleted(v)
	return _u
}

// SetChallengesScored sets the "challenges_scored" field.
func (_u *AssessmentEventUpdateOne) SetChallengesScored(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetChallengesScored()
	_u.mutation.SetChallengesScored(v)
	return _u
}

// SetNillableChallengesScored sets the "challenges_scored" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableChallengesScored(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetChallengesScored(*v)
	}
	return _u
}

// AddChallengesScored adds value to the "challenges_scored" field.
func (_u *AssessmentEventUpdateOne) AddChallengesScored(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddChallengesScored(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) SetDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableDurationSecs(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AssessmentEventUpdateOne) AddDurationSecs(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := assessmentevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(assessmentevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenesCompleted(); ok {
		_spec.SetField(assessmentevent.FieldScenesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScenesCompleted(); ok {
		_spec.AddField(assessmentevent.FieldScenesCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChallengesScored(); ok {
		_spec.SetField(assessmentevent.FieldChallengesScored, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChallengesScored(); ok {
		_spec.AddField(assessmentevent.FieldChallengesScored, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(assessmentevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
