// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trio-sh/academy-builder-sub001/ent/predicate"
	"github.com/trio-sh/academy-builder-sub001/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultEventUpdate) SetAssessmentID(v string) *ResultEventUpdate {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableAssessmentID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSceneID sets the "scene_id" field.
func (_u *ResultEventUpdate) SetSceneID(v string) *ResultEventUpdate {
	_u.mutation.SetSceneID(v)
	return _u
}

// SetNillableSceneID sets the "scene_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSceneID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetSceneID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ResultEventUpdate) SetKind(v string) *ResultEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableKind(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDimension sets the "dimension" field.
func (_u *ResultEventUpdate) SetDimension(v string) *ResultEventUpdate {
	_u.mutation.SetDimension(v)
	return _u
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableDimension(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetDimension(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ResultEventUpdate) SetScores(v map[string]float64) *ResultEventUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ResultEventUpdate) SetFeedback(v string) *ResultEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableFeedback(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *ResultEventUpdate) SetRawResponse(v string) *ResultEventUpdate {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableRawResponse(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SceneID(); ok {
		if err := resultevent.SceneIDValidator(v); err != nil {
			return &ValidationError{Name: "scene_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.scene_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := resultevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dimension(); ok {
		if err := resultevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.dimension": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssessmentID(); ok {
		_spec.SetField(resultevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SceneID(); ok {
		_spec.SetField(resultevent.FieldSceneID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(resultevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dimension(); ok {
		_spec.SetField(resultevent.FieldDimension, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(resultevent.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(resultevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(resultevent.FieldRawResponse, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetAssessmentID sets the "assessment_id" field.
func (_u *ResultEventUpdateOne) SetAssessmentID(v string) *ResultEventUpdateOne {
	_u.mutation.SetAssessmentID(v)
	return _u
}

// SetNillableAssessmentID sets the "assessment_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableAssessmentID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetAssessmentID(*v)
	}
	return _u
}

// SetSceneID sets the "scene_id" field.
func (_u *ResultEventUpdateOne) SetSceneID(v string) *ResultEventUpdateOne {
	_u.mutation.SetSceneID(v)
	return _u
}

// SetNillableSceneID sets the "scene_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSceneID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSceneID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ResultEventUpdateOne) SetKind(v string) *ResultEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableKind(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetDimension sets the "dimension" field.
func (_u *ResultEventUpdateOne) SetDimension(v string) *ResultEventUpdateOne {
	_u.mutation.SetDimension(v)
	return _u
}

// SetNillableDimension sets the "dimension" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableDimension(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetDimension(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *ResultEventUpdateOne) SetScores(v map[string]float64) *ResultEventUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ResultEventUpdateOne) SetFeedback(v string) *ResultEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableFeedback(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetRawResponse sets the "raw_response" field.
func (_u *ResultEventUpdateOne) SetRawResponse(v string) *ResultEventUpdateOne {
	_u.mutation.SetRawResponse(v)
	return _u
}

// SetNillableRawResponse sets the "raw_response" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableRawResponse(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetRawResponse(*v)
	}
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.AssessmentID(); ok {
		if err := resultevent.AssessmentIDValidator(v); err != nil {
			return &ValidationError{Name: "assessment_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.assessment_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SceneID(); ok {
		if err := resultevent.SceneIDValidator(v); err != nil {
			return &ValidationError{Name: "scene_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.scene_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := resultevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dimension(); ok {
		if err := resultevent.DimensionValidator(v); err != nil {
			return &ValidationError{Name: "dimension", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.dimension": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
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
		_spec.SetField(resultevent.FieldAssessmentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SceneID(); ok {
		_spec.SetField(resultevent.FieldSceneID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(resultevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dimension(); ok {
		_spec.SetField(resultevent.FieldDimension, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(resultevent.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(resultevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawResponse(); ok {
		_spec.SetField(resultevent.FieldRawResponse, field.TypeString, value)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
