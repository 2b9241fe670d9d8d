package script_test

import (
	"errors"
	"testing"

	"github.com/kardolus/stubexpect/script"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func TestUnitScript(t *testing.T) {
	spec.Run(t, "Testing the call script", testScript, spec.Report(report.Terminal{}))
}

type fruit struct {
	weight float64
	color  string
}

func testScript(t *testing.T, when spec.G, it spec.S) {
	it.Before(func() {
		RegisterTestingT(t)
	})

	when("PositionalPrefix", func() {
		var subject script.PositionalPrefix

		it("matches equal sequences", func() {
			Expect(subject.Match([]any{3.0, "Green"}, []any{3.0, "Green"})).To(BeTrue())
		})
		it("ignores trailing actual arguments", func() {
			Expect(subject.Match([]any{3.0}, []any{3.0, "Green", 7})).To(BeTrue())
		})
		it("ignores trailing expected arguments", func() {
			Expect(subject.Match([]any{3.0, "Green"}, []any{3.0})).To(BeTrue())
		})
		it("accepts anything when nothing is expected", func() {
			Expect(subject.Match(nil, []any{"anything"})).To(BeTrue())
		})
		it("fails on a differing compared position", func() {
			Expect(subject.Match([]any{3.0, "Green"}, []any{3.0, "Yellow"})).To(BeFalse())
		})
	})

	when("FullSequence", func() {
		var subject script.FullSequence

		it("matches equal sequences", func() {
			Expect(subject.Match([]any{3.0, "Green"}, []any{3.0, "Green"})).To(BeTrue())
		})
		it("treats nil and empty as the same arity", func() {
			Expect(subject.Match(nil, []any{})).To(BeTrue())
		})
		it("fails on differing arity", func() {
			Expect(subject.Match([]any{3.0}, []any{3.0, "Green"})).To(BeFalse())
			Expect(subject.Match([]any{3.0}, nil)).To(BeFalse())
		})
		it("compares values structurally, including unexported fields", func() {
			Expect(subject.Match([]any{fruit{3, "Red"}}, []any{fruit{3, "Red"}})).To(BeTrue())
			Expect(subject.Match([]any{fruit{3, "Red"}}, []any{fruit{3, "Blue"}})).To(BeFalse())
		})
		it("does not coerce numeric types", func() {
			Expect(subject.Match([]any{3}, []any{3.0})).To(BeFalse())
		})
	})

	when("Script", func() {
		var subject *script.Script

		it.Before(func() {
			subject = script.New(script.FullSequence{}).
				Expect("A", []any{3.0, "Yellow"}).
				Expect("B", []any{5.0, "Green"})
		})

		it("defaults to full sequence comparison", func() {
			Expect(script.New(nil).Comparator().Name()).To(Equal("full-sequence"))
		})

		it("returns the paired values in declaration order", func() {
			ret, err := subject.Call(3.0, "Yellow")
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(Equal("A"))

			ret, err = subject.Call(5.0, "Green")
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(Equal("B"))

			Expect(subject.Consumed()).To(Equal(2))
			Expect(subject.Verify()).To(Succeed())
		})

		it("reports a mismatch without consuming the record", func() {
			_, err := subject.Call(5.0, "Green")

			var typed *script.Error
			Expect(errors.As(err, &typed)).To(BeTrue())
			Expect(typed.Kind).To(Equal(script.KindMismatch))
			Expect(typed.Call).To(Equal(1))
			Expect(typed.Expected).To(Equal([]any{3.0, "Yellow"}))
			Expect(typed.Actual).To(Equal([]any{5.0, "Green"}))
			Expect(typed.Diff).NotTo(BeEmpty())
			Expect(subject.Remaining()).To(Equal(2))
		})

		it("reports exhaustion after every record was consumed", func() {
			_, _ = subject.Call(3.0, "Yellow")
			_, _ = subject.Call(5.0, "Green")
			_, err := subject.Call(5.0, "Green")

			var typed *script.Error
			Expect(errors.As(err, &typed)).To(BeTrue())
			Expect(typed.Kind).To(Equal(script.KindExhausted))
			Expect(typed.Call).To(Equal(3))
			Expect(typed.Declared).To(Equal(2))
		})

		it("fails verification while records remain", func() {
			_, _ = subject.Call(3.0, "Yellow")

			err := subject.Verify()
			var typed *script.Error
			Expect(errors.As(err, &typed)).To(BeTrue())
			Expect(typed.Kind).To(Equal(script.KindUnconsumed))
			Expect(typed.Remaining).To(Equal(1))
			Expect(err).To(MatchError("1 of 2 expected calls not made"))
		})

		it("copies the declared arguments", func() {
			args := []any{"x"}
			s := script.New(nil).Expect(1, args)
			args[0] = "y"

			ret, err := s.Call("x")
			Expect(err).NotTo(HaveOccurred())
			Expect(ret).To(Equal(1))
		})
	})
}
