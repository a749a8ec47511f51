package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("merchant_name").NotEmpty(),
		field.String("address").Optional().Nillable(),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
		field.Float("subtotal").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency_code").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.UUID("category_id", uuid.UUID{}).Optional().Nillable(),
		// denormalized for list/export reads
		field.String("category_name").Optional().Default(""),
		// Item lines exactly as the parser formatted them, source order kept.
		field.Strings("items").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY receipts -> ONE profile (FK: receipts.profile_id)
		edge.From("profile", Profile.Type).
			Ref("receipts").
			Field("profile_id").
			Required().
			Unique(),
		// OPTIONAL: MANY receipts -> ONE category (FK: receipts.category_id)
		edge.From("category", Category.Type).
			Ref("receipts").
			Field("category_id").
			Unique(),
		// ONE receipt -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}
