package spanner

import "github.com/zoobzio/spanql/internal/render"

// dialectName is the name carried on every rejection error.
const dialectName = "Spanner"

// maxInt64Literal is emitted as the LIMIT when a query declares OFFSET
// without LIMIT; GoogleSQL requires LIMIT whenever OFFSET is present.
const maxInt64Literal = "9223372036854775807"

// catalog lists the features GoogleSQL lacks relative to the abstract query
// surface. Features absent from the catalog are supported. Where a
// substitute exists the renderer either applies it (MOD, LIMIT for bare
// OFFSET, unique constraints as indexes) or names it in the rejection hint.
var catalog = render.Catalog{
	render.FeatureILike:           {Supported: false, Substitute: "REGEXP_CONTAINS with a (?i) pattern"},
	render.FeatureOrderByRandom:   {Supported: false},
	render.FeatureModuloOperator:  {Supported: false, Substitute: "MOD()"},
	render.FeatureVariance:        {Supported: false},
	render.FeatureStdDev:          {Supported: false},
	render.FeatureSelectForUpdate: {Supported: false},
	render.FeatureOffsetSansLimit: {Supported: false, Substitute: "LIMIT " + maxInt64Literal},

	render.FeatureCheckConstraint:  {Supported: false},
	render.FeatureUniqueConstraint: {Supported: false, Substitute: "CREATE UNIQUE INDEX"},
	render.FeatureRenameTable:      {Supported: false},
	render.FeatureRenameColumn:     {Supported: false},
	render.FeatureAlterColumnType:  {Supported: false},
	render.FeatureAlterPrimaryKey:  {Supported: false},
	render.FeatureOnDeleteCascade:  {Supported: false},
	render.FeatureAutoIncrement:    {Supported: false, Substitute: "client-generated random key"},
	render.FeatureAtomicDDL:        {Supported: false},
	render.FeatureDecimalType:      {Supported: false, Substitute: "FLOAT64 or STRING"},
}

// Catalog returns the dialect's capability catalog.
func Catalog() render.Catalog {
	return catalog
}

// Supports reports whether the dialect can express the named feature.
// Feature names match the strings carried on rejection errors.
func Supports(feature string) bool {
	return catalog.Supports(render.Feature(feature))
}

// SubstituteFor returns the dialect's substitute for an unsupported feature,
// or "" when none exists.
func SubstituteFor(feature string) string {
	return catalog.SubstituteFor(render.Feature(feature))
}
