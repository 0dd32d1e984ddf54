package birthday

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("birthday not found")

type Birthday struct {
	ID             int     `json:"id" bson:"id"`
	Name           string  `json:"name" bson:"name"`
	BirthDate      string  `json:"birthDate" bson:"birthDate"`
	Description    *string `json:"description" bson:"description"`
	IsGiftRequired bool    `json:"isGiftRequired" bson:"isGiftRequired"`
	IsReminderSet  bool    `json:"isReminderSet" bson:"isReminderSet"`
}

// Input holds the fields accepted on create. Omitted flags default to false,
// an omitted description is stored as null.
type Input struct {
	Name           string  `json:"name" validate:"required"`
	BirthDate      string  `json:"birthDate" validate:"required,ymd"`
	Description    *string `json:"description"`
	IsGiftRequired *bool   `json:"isGiftRequired"`
	IsReminderSet  *bool   `json:"isReminderSet"`
}

// Build turns the input into a record carrying the given id.
func (in Input) Build(id int) *Birthday {
	b := &Birthday{
		ID:          id,
		Name:        in.Name,
		BirthDate:   in.BirthDate,
		Description: in.Description,
	}
	if in.IsGiftRequired != nil {
		b.IsGiftRequired = *in.IsGiftRequired
	}
	if in.IsReminderSet != nil {
		b.IsReminderSet = *in.IsReminderSet
	}
	return b
}

// Optional records whether a JSON field was sent at all and whether it was null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Null, o.Value = true, zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(data, &o.Value)
}

// Patch is a partial update. Only fields with Set overwrite the stored record,
// whatever their value.
type Patch struct {
	Name           Optional[string] `json:"name"`
	BirthDate      Optional[string] `json:"birthDate"`
	Description    Optional[string] `json:"description"`
	IsGiftRequired Optional[bool]   `json:"isGiftRequired"`
	IsReminderSet  Optional[bool]   `json:"isReminderSet"`
}

// Apply merges the patch into b in place. The id is never touched.
func (p Patch) Apply(b *Birthday) {
	if p.Name.Set {
		b.Name = p.Name.Value
	}
	if p.BirthDate.Set {
		b.BirthDate = p.BirthDate.Value
	}
	if p.Description.Set {
		if p.Description.Null {
			b.Description = nil
		} else {
			d := p.Description.Value
			b.Description = &d
		}
	}
	if p.IsGiftRequired.Set {
		b.IsGiftRequired = p.IsGiftRequired.Value
	}
	if p.IsReminderSet.Set {
		b.IsReminderSet = p.IsReminderSet.Value
	}
}

// Repository is the durable record store. GetByID reports a missing record as
// (nil, nil); Delete of a missing record is a no-op.
type Repository interface {
	GetAll(ctx context.Context) ([]*Birthday, error)
	GetByID(ctx context.Context, id int) (*Birthday, error)
	Create(ctx context.Context, in Input) (*Birthday, error)
	Update(ctx context.Context, id int, patch Patch) (*Birthday, error)
	Delete(ctx context.Context, id int) error
}

func nextID(list []*Birthday) int {
	maxID := 0
	for _, b := range list {
		if b.ID > maxID {
			maxID = b.ID
		}
	}
	return maxID + 1
}
