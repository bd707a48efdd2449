package spanql

import (
	"testing"

	"github.com/zoobzio/spanql/internal/types"
)

func TestAggregates(t *testing.T) {
	tests := []struct {
		name string
		expr types.FieldExpression
		want types.AggregateFunc
	}{
		{"Sum", Sum(F("total")), AggSum},
		{"Avg", Avg(F("total")), AggAvg},
		{"Min", Min(F("total")), AggMin},
		{"Max", Max(F("total")), AggMax},
		{"CountField", CountField(F("id")), AggCountField},
		{"CountDistinct", CountDistinct(F("id")), AggCountDistinct},
		{"Variance", Variance(F("latency")), AggVariance},
		{"StdDev", StdDev(F("latency")), AggStdDev},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expr.Aggregate != tt.want {
				t.Errorf("Aggregate = %s, want %s", tt.expr.Aggregate, tt.want)
			}
		})
	}
}

func TestArith(t *testing.T) {
	a := Arith(Fld(F("cost")), Add, Val(P("markup")))
	if a.Op != Add {
		t.Errorf("Op = %s, want +", a.Op)
	}
	if a.Left.Field == nil || a.Left.Field.Name != "cost" {
		t.Errorf("Left = %+v, want cost field", a.Left)
	}
	if a.Right.Param == nil || a.Right.Param.Name != "markup" {
		t.Errorf("Right = %+v, want markup param", a.Right)
	}
}

func TestArith_PanicsOnComparisonOperator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Arith(Fld(F("a")), EQ, Fld(F("b")))
}

func TestNullVal(t *testing.T) {
	o := NullVal()
	if !o.IsNull() {
		t.Error("NullVal() should produce the NULL operand")
	}
}

func TestCE(t *testing.T) {
	cond := CE(F("price"), EQ, Arith(Fld(F("cost")), Add, Val(P("markup"))))
	if cond.Field.Name != "price" || cond.Operator != EQ {
		t.Errorf("unexpected condition: %+v", cond)
	}
}

func TestCE_PanicsOnArithmeticOperator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	CE(F("price"), Add, Arith(Fld(F("cost")), Add, Val(P("markup"))))
}

func TestIntervals(t *testing.T) {
	add := AddInterval(FT("renewal_date", TypeDate), P("days"), UnitDay)
	if add.Op != types.TemporalAdd || add.Unit != UnitDay {
		t.Errorf("unexpected interval: %+v", add)
	}

	sub := SubInterval(FT("expires_at", TypeTimestamp), P("hours"), UnitHour)
	if sub.Op != types.TemporalSub {
		t.Errorf("Op = %s, want sub", sub.Op)
	}
}

func TestAs(t *testing.T) {
	expr := As(Sum(F("total")), "total_spent")
	if expr.Alias != "total_spent" {
		t.Errorf("Alias = %q, want total_spent", expr.Alias)
	}
}

func TestAs_PanicsOnInvalidAlias(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	As(Sum(F("total")), "total; DROP TABLE users")
}

func TestCSub(t *testing.T) {
	sub := Sub(Select(T("orders")).Fields(F("user_id")))
	cond := CSub(F("id"), IN, sub)
	if cond.Field == nil || cond.Field.Name != "id" {
		t.Errorf("unexpected condition: %+v", cond)
	}
}

func TestCSub_PanicsOnExists(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	CSub(F("id"), EXISTS, Sub(Select(T("orders"))))
}

func TestCSubExists(t *testing.T) {
	cond := CSubExists(EXISTS, Sub(Select(T("orders"))))
	if cond.Field != nil {
		t.Error("EXISTS condition should carry no field")
	}
}
