package clause_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/clause-builder/pkg/clause"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

var _ = Describe("ParseOperator", func() {
	DescribeTable("normalizes supported operators",
		func(input string, expected clause.Operator) {
			op, err := clause.ParseOperator(input)
			Expect(err).ToNot(HaveOccurred())
			Expect(op).To(Equal(expected))
		},
		Entry("in", "in", clause.In),
		Entry("IN", "IN", clause.In),
		Entry("not in", "not in", clause.NotIn),
		Entry("Not  In with spaces", "  Not  In ", clause.NotIn),
		Entry("like", "like", clause.Like),
		Entry("not like", "NOT like", clause.NotLike),
	)

	DescribeTable("rejects anything else",
		func(input string) {
			_, err := clause.ParseOperator(input)
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsUnsupportedOperatorError(err)).To(BeTrue())
		},
		Entry("empty", ""),
		Entry("equal", "="),
		Entry("ilike", "ILIKE"),
		Entry("notin", "NOTIN"),
	)
})
