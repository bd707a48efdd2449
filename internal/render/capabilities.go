package render

// Feature identifies a SQL capability that a dialect may or may not support.
// Dialect packages declare their limitations in a Catalog; renderers consult
// the catalog before emitting SQL so that unsupported features are rejected
// with a structured error instead of producing text the database would choke
// on.
type Feature string

const (
	// Query features.
	FeatureILike           Feature = "ILIKE"
	FeatureOrderByRandom   Feature = "ORDER BY RANDOM"
	FeatureModuloOperator  Feature = "% operator"
	FeatureVariance        Feature = "VARIANCE"
	FeatureStdDev          Feature = "STDDEV"
	FeatureSelectForUpdate Feature = "SELECT ... FOR UPDATE"
	FeatureOffsetSansLimit Feature = "OFFSET without LIMIT"
	FeatureRightJoin       Feature = "RIGHT JOIN"
	FeatureFullJoin        Feature = "FULL JOIN"

	// Schema features.
	FeatureCheckConstraint  Feature = "CHECK constraint"
	FeatureUniqueConstraint Feature = "UNIQUE constraint"
	FeatureRenameTable      Feature = "RENAME TABLE"
	FeatureRenameColumn     Feature = "RENAME COLUMN"
	FeatureAlterColumnType  Feature = "ALTER COLUMN TYPE"
	FeatureAlterPrimaryKey  Feature = "ALTER PRIMARY KEY"
	FeatureOnDeleteCascade  Feature = "ON DELETE CASCADE"
	FeatureAutoIncrement    Feature = "AUTO INCREMENT"
	FeatureAtomicDDL        Feature = "atomic DDL batch"
	FeatureDecimalType      Feature = "DECIMAL column type"
)

// Capability records whether a dialect supports a feature and, when it does
// not, how the renderer compensates. An empty Substitute means the feature is
// rejected outright; a non-empty one names the rewrite the renderer applies
// (the hint carried on the rejection error when the rewrite cannot apply).
type Capability struct {
	Supported  bool
	Substitute string
}

// Catalog maps features to their capability records for one dialect.
// A feature absent from the catalog is supported: catalogs list limitations,
// not the full SQL surface.
type Catalog map[Feature]Capability

// Supports reports whether the dialect supports the feature.
func (c Catalog) Supports(f Feature) bool {
	cap, ok := c[f]
	if !ok {
		return true
	}
	return cap.Supported
}

// SubstituteFor returns the documented substitute for an unsupported
// feature, or the empty string when there is none.
func (c Catalog) SubstituteFor(f Feature) string {
	return c[f].Substitute
}
