package spanql_test

import (
	"fmt"

	"github.com/zoobzio/spanql"
	"github.com/zoobzio/spanql/spanner"
)

func ExampleSelect() {
	renderer := spanner.New()

	result := spanql.Select(spanql.T("users", "u")).
		Fields(
			spanql.F("id"),
			spanql.F("name"),
			spanql.F("email"),
		).
		Where(
			spanql.And(
				spanql.C(spanql.F("age"), spanql.GT, spanql.P("min_age")),
				spanql.C(spanql.F("email"), spanql.LIKE, spanql.P("email_pattern")),
			),
		).
		OrderBy(spanql.F("name"), spanql.ASC).
		Limit(10).
		MustRender(renderer)

	fmt.Println(result.SQL)
	fmt.Println(result.RequiredParams)

	// Output:
	// SELECT `id`, `name`, `email` FROM `users` u WHERE (`age` > @min_age AND `email` LIKE @email_pattern) ORDER BY `name` ASC LIMIT 10
	// [min_age email_pattern]
}

func ExampleUpdate() {
	renderer := spanner.New()

	result := spanql.Update(spanql.T("products")).
		SetExpr(spanql.F("price"), spanql.Arith(
			spanql.Fld(spanql.F("price")), spanql.Mul, spanql.Val(spanql.P("factor")))).
		Where(spanql.C(spanql.F("id"), spanql.EQ, spanql.P("id"))).
		MustRender(renderer)

	fmt.Println(result.SQL)

	// Output:
	// UPDATE `products` SET `price` = (`price` * @factor) WHERE `id` = @id
}

func ExampleSelect_offsetWithoutLimit() {
	renderer := spanner.New()

	// Spanner requires a LIMIT whenever OFFSET is present; the compiler
	// substitutes the maximum INT64 literal.
	result := spanql.Select(spanql.T("users")).
		Fields(spanql.F("id")).
		OrderBy(spanql.F("id"), spanql.ASC).
		Offset(20).
		MustRender(renderer)

	fmt.Println(result.SQL)

	// Output:
	// SELECT `id` FROM `users` ORDER BY `id` ASC LIMIT 9223372036854775807 OFFSET 20
}

func ExampleRenderer_unsupportedFeature() {
	renderer := spanner.New()

	_, err := spanql.Select(spanql.T("users")).
		Where(spanql.C(spanql.F("name"), spanql.ILIKE, spanql.P("pattern"))).
		Render(renderer)

	fmt.Println(err)

	// Output:
	// Spanner: ILIKE is not supported: use REGEXP_CONTAINS with a (?i) pattern
}
