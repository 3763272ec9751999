package clause_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/clause-builder/pkg/clause"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

var _ = Describe("FormatValues", func() {
	type testCase struct {
		values []string
		op     clause.Operator
		output string
	}

	tests := []testCase{
		// ===== NUMERIC LISTS =====
		{values: []string{"1", "2", "3"}, op: clause.In, output: "1, 2, 3"},
		{values: []string{" 1 ", "2.5", "-3"}, op: clause.NotIn, output: "1, 2.5, -3"},
		{values: []string{"1e3", "0.5"}, op: clause.In, output: "1e3, 0.5"},

		// ===== STRING LISTS =====
		{values: []string{"a", "b"}, op: clause.In, output: "'a', 'b'"},
		{values: []string{"1", "b"}, op: clause.In, output: "'1', 'b'"},
		{values: []string{"O'Brien"}, op: clause.In, output: "'O''Brien'"},
		{values: []string{"  x  "}, op: clause.NotIn, output: "'x'"},
		{values: []string{"1", " "}, op: clause.In, output: "'1', ''"},
		{values: []string{"NaN"}, op: clause.In, output: "'NaN'"},
		{values: []string{"Inf", "1"}, op: clause.In, output: "'Inf', '1'"},

		// ===== LIKE =====
		{values: []string{"x"}, op: clause.Like, output: "col LIKE '%x%'"},
		{values: []string{"x", "y"}, op: clause.Like, output: "col LIKE '%x%' OR col LIKE '%y%'"},
		{values: []string{"it's"}, op: clause.NotLike, output: "col NOT LIKE '%it''s%'"},
		{values: []string{" 42 "}, op: clause.Like, output: "col LIKE '%42%'"},
	}

	for _, test := range tests {
		test := test
		It("should format "+strings.Join(test.values, "|")+" with "+string(test.op), func() {
			out, err := clause.FormatValues(test.values, test.op, "col")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(test.output))
		})
	}

	It("rejects unsupported operators", func() {
		_, err := clause.FormatValues([]string{"a"}, clause.Operator("="), "col")
		Expect(srvErrors.IsUnsupportedOperatorError(err)).To(BeTrue())
	})
})

var _ = Describe("ComposeQuery", func() {
	type testCase struct {
		base      string
		op        clause.Operator
		formatted string
		output    string
	}

	tests := []testCase{
		{base: "", op: clause.In, formatted: "1, 2", output: "SELECT * FROM table_name WHERE col IN (1, 2);"},
		{base: "   ", op: clause.NotIn, formatted: "'a'", output: "SELECT * FROM table_name WHERE col NOT IN ('a');"},
		{base: "SELECT * FROM t", op: clause.In, formatted: "1, 2", output: "SELECT * FROM t WHERE col IN (1, 2);"},
		{base: "SELECT * FROM t WHERE x=1", op: clause.In, formatted: "1, 2", output: "SELECT * FROM t WHERE x=1 AND col IN (1, 2);"},
		{base: "select * from t where x=1", op: clause.In, formatted: "1", output: "select * from t where x=1 AND col IN (1);"},
		{base: "  SELECT * FROM t  ", op: clause.Like, formatted: "col LIKE '%x%'", output: "SELECT * FROM t WHERE (col LIKE '%x%');"},
		{base: "SELECT * FROM t WHERE a=1", op: clause.NotLike, formatted: "col NOT LIKE '%x%' OR col NOT LIKE '%y%'", output: "SELECT * FROM t WHERE a=1 AND (col NOT LIKE '%x%' OR col NOT LIKE '%y%');"},
		// textual match only: "nowhere" contains "where"
		{base: "SELECT * FROM nowhere", op: clause.In, formatted: "1", output: "SELECT * FROM nowhere AND col IN (1);"},
		// terminator on base is left in place
		{base: "SELECT * FROM t;", op: clause.In, formatted: "1", output: "SELECT * FROM t; WHERE col IN (1);"},
		{base: "SELECT * FROM t WHERE x=1 ; ", op: clause.In, formatted: "1", output: "SELECT * FROM t WHERE x=1 ; AND col IN (1);"},
	}

	for _, test := range tests {
		test := test
		It("should compose: "+test.output, func() {
			out, err := clause.ComposeQuery(test.base, test.op, "col", test.formatted)
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(Equal(test.output))
			Expect(strings.HasSuffix(out, ";;")).To(BeFalse())
		})
	}

	It("rejects unsupported operators", func() {
		_, err := clause.ComposeQuery("", clause.Operator("BETWEEN"), "col", "1")
		Expect(srvErrors.IsUnsupportedOperatorError(err)).To(BeTrue())
	})
})

var _ = Describe("Generate", func() {
	var table *tabular.Table

	BeforeEach(func() {
		var err error
		table, err = tabular.Parse("id, name ,empty\n1,bob,\n2,alice,\n1, bob ,\n3,O'Neil,")
		Expect(err).ToNot(HaveOccurred())
	})

	// Given a column with duplicated numeric values
	// When we generate an IN clause
	// Then each value appears once and unquoted
	It("generates a numeric IN clause with distinct values", func() {
		sql, err := clause.Generate(clause.Request{Table: table, Column: 0, Operator: clause.In})
		Expect(err).ToNot(HaveOccurred())
		Expect(sql).To(Equal("SELECT * FROM table_name WHERE id IN (1, 2, 3);"))
	})

	It("uses the trimmed header as column name", func() {
		sql, err := clause.Generate(clause.Request{
			Table:     table,
			Column:    1,
			Operator:  clause.NotIn,
			BaseQuery: "SELECT * FROM users WHERE active = 1",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(sql).To(Equal("SELECT * FROM users WHERE active = 1 AND name NOT IN ('bob', 'alice', 'O''Neil');"))
	})

	It("generates LIKE clauses", func() {
		sql, err := clause.Generate(clause.Request{Table: table, Column: 1, Operator: clause.Like, BaseQuery: "SELECT * FROM users"})
		Expect(err).ToNot(HaveOccurred())
		Expect(sql).To(Equal("SELECT * FROM users WHERE (name LIKE '%bob%' OR name LIKE '%alice%' OR name LIKE '%O''Neil%');"))
	})

	It("fails without a table", func() {
		_, err := clause.Generate(clause.Request{Column: 0, Operator: clause.In})
		Expect(srvErrors.IsNoTableLoadedError(err)).To(BeTrue())
	})

	It("fails without a valid column", func() {
		_, err := clause.Generate(clause.Request{Table: table, Column: -1, Operator: clause.In})
		Expect(srvErrors.IsNoColumnSelectedError(err)).To(BeTrue())

		_, err = clause.Generate(clause.Request{Table: table, Column: 3, Operator: clause.In})
		Expect(srvErrors.IsNoColumnSelectedError(err)).To(BeTrue())
	})

	It("fails when the column has no values", func() {
		_, err := clause.Generate(clause.Request{Table: table, Column: 2, Operator: clause.In})
		Expect(srvErrors.IsEmptyColumnValuesError(err)).To(BeTrue())
	})

	It("fails with an unsupported operator", func() {
		_, err := clause.Generate(clause.Request{Table: table, Column: 0, Operator: clause.Operator("=")})
		Expect(srvErrors.IsUnsupportedOperatorError(err)).To(BeTrue())
	})
})
