package domain_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"miniapp-studio/internal/domain"
)

var _ = Describe("Estimator wizard", func() {
	var (
		sel     domain.Selection
		pricing domain.PricingTable
	)

	BeforeEach(func() {
		sel = domain.NewSelection()
		pricing = domain.DefaultPricing()
	})

	walkTo := func(step domain.Step) {
		for sel.Step < step {
			Expect(sel.Apply(domain.Action{Kind: domain.ActionNext})).To(Succeed())
		}
	}

	Context("linear navigation", func() {
		It("starts on the features step", func() {
			Expect(sel.Step).To(Equal(domain.StepFeatures))
			Expect(domain.StepName(sel.Step)).To(Equal("Функционал"))
		})

		It("visits every step once on the way to the results", func() {
			var visited []domain.Step
			for {
				visited = append(visited, sel.Step)
				if sel.IsResults() {
					break
				}
				sel.Advance()
			}
			Expect(visited).To(Equal(domain.AllSteps()))
		})

		DescribeTable("advance and retreat move by exactly one",
			func(from domain.Step, kind domain.ActionKind, want domain.Step) {
				sel.Step = from
				Expect(sel.Apply(domain.Action{Kind: kind})).To(Succeed())
				Expect(sel.Step).To(Equal(want))
			},
			Entry("1 -> 2", domain.StepFeatures, domain.ActionNext, domain.StepDesign),
			Entry("4 -> 5", domain.StepTimeline, domain.ActionNext, domain.StepResults),
			Entry("5 stays 5", domain.StepResults, domain.ActionNext, domain.StepResults),
			Entry("5 -> 4", domain.StepResults, domain.ActionBack, domain.StepTimeline),
			Entry("2 -> 1", domain.StepDesign, domain.ActionBack, domain.StepFeatures),
			Entry("1 stays 1", domain.StepFeatures, domain.ActionBack, domain.StepFeatures),
		)

		It("never gates advancement on the answers", func() {
			walkTo(domain.StepResults)
			Expect(sel.Features).To(BeEmpty())
			Expect(sel.IsResults()).To(BeTrue())
		})
	})

	Context("changing parameters from the results", func() {
		BeforeEach(func() {
			Expect(sel.Apply(domain.Action{Kind: domain.ActionToggleFeature, ID: "payments"})).To(Succeed())
			Expect(sel.Apply(domain.Action{Kind: domain.ActionSetDesign, ID: "basic"})).To(Succeed())
			walkTo(domain.StepResults)
		})

		It("goes back to the first step keeping the answers and the total", func() {
			total := pricing.Total(sel)

			Expect(sel.Apply(domain.Action{Kind: domain.ActionReset})).To(Succeed())

			Expect(sel.Step).To(Equal(domain.StepFeatures))
			Expect(sel.Features).To(ConsistOf(domain.FeaturePayments))
			Expect(sel.Design).To(Equal(domain.DesignBasic))
			Expect(pricing.Total(sel)).To(Equal(total))
		})

		It("can be revised and reach the results again", func() {
			Expect(sel.Apply(domain.Action{Kind: domain.ActionReset})).To(Succeed())
			Expect(sel.Apply(domain.Action{Kind: domain.ActionToggleFeature, ID: "payments"})).To(Succeed())
			walkTo(domain.StepResults)

			Expect(sel.IsResults()).To(BeTrue())
			Expect(pricing.Total(sel)).To(Equal(int64(40000 + 0 + 0 + 0)))
		})
	})

	It("reports the scenario totals", func() {
		Expect(pricing.Total(sel)).To(Equal(int64(70000)))
		Expect(domain.FormatPrice(pricing.Total(sel))).To(HaveSuffix(" ₽"))

		for _, a := range []domain.Action{
			{Kind: domain.ActionToggleFeature, ID: "payments"},
			{Kind: domain.ActionToggleFeature, ID: "bot"},
			{Kind: domain.ActionSetDesign, ID: "custom"},
			{Kind: domain.ActionToggleIntegration, ID: "crm"},
			{Kind: domain.ActionSetTimeline, ID: "urgent"},
		} {
			Expect(sel.Apply(a)).To(Succeed())
		}
		Expect(pricing.Total(sel)).To(Equal(int64(245000)))
	})
})
