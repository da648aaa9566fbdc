package tui_test

import (
	"strings"

	"github.com/killallgit/convo/pkg/tui"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Rect", func() {
	Describe("NewRect", func() {
		It("should create rect with specified dimensions", func() {
			rect := tui.NewRect(10, 20, 30, 40)

			Expect(rect.X).To(Equal(10))
			Expect(rect.Y).To(Equal(20))
			Expect(rect.Width).To(Equal(30))
			Expect(rect.Height).To(Equal(40))
		})
	})

	It("should return right and bottom edges", func() {
		rect := tui.NewRect(10, 20, 30, 40)

		Expect(rect.Right()).To(Equal(40))
		Expect(rect.Bottom()).To(Equal(60))
	})

	Describe("Contains", func() {
		It("should return true for points inside rect", func() {
			rect := tui.NewRect(10, 20, 30, 40)

			Expect(rect.Contains(10, 20)).To(BeTrue())
			Expect(rect.Contains(25, 30)).To(BeTrue())
			Expect(rect.Contains(39, 59)).To(BeTrue())
		})

		It("should return false for points outside rect", func() {
			rect := tui.NewRect(10, 20, 30, 40)

			Expect(rect.Contains(9, 20)).To(BeFalse())
			Expect(rect.Contains(10, 19)).To(BeFalse())
			Expect(rect.Contains(40, 30)).To(BeFalse())
			Expect(rect.Contains(25, 60)).To(BeFalse())
		})
	})

	Describe("Intersects", func() {
		It("should detect overlap in both directions", func() {
			rect1 := tui.NewRect(10, 10, 20, 20)
			rect2 := tui.NewRect(15, 15, 20, 20)
			rect3 := tui.NewRect(40, 40, 20, 20)

			Expect(rect1.Intersects(rect2)).To(BeTrue())
			Expect(rect2.Intersects(rect1)).To(BeTrue())
			Expect(rect1.Intersects(rect3)).To(BeFalse())
		})
	})

	It("should report empty rects", func() {
		Expect(tui.NewRect(0, 0, 0, 5).Empty()).To(BeTrue())
		Expect(tui.NewRect(0, 0, 5, 0).Empty()).To(BeTrue())
		Expect(tui.NewRect(0, 0, 1, 1).Empty()).To(BeFalse())
	})
})

var _ = Describe("Layout", func() {
	It("should stack header, list and footer", func() {
		header, list, footer := tui.NewLayout(0, 0, 80, 24, 3).CalculateAreas()

		Expect(header).To(Equal(tui.NewRect(0, 0, 80, 3)))
		Expect(list).To(Equal(tui.NewRect(0, 3, 80, 20)))
		Expect(footer).To(Equal(tui.NewRect(0, 23, 80, 1)))
	})

	It("should honor the origin", func() {
		header, list, footer := tui.NewLayout(2, 1, 40, 10, 1).CalculateAreas()

		Expect(header).To(Equal(tui.NewRect(2, 1, 40, 1)))
		Expect(list).To(Equal(tui.NewRect(2, 2, 40, 8)))
		Expect(footer).To(Equal(tui.NewRect(2, 10, 40, 1)))
	})

	It("should give the header priority on tiny screens", func() {
		header, list, footer := tui.NewLayout(0, 0, 80, 3, 3).CalculateAreas()

		Expect(header.Height).To(Equal(3))
		Expect(list.Height).To(Equal(0))
		Expect(footer.Height).To(Equal(0))
	})
})

var _ = Describe("WrapText", func() {
	It("should return nothing for empty input or width", func() {
		Expect(tui.WrapText("", 10)).To(BeEmpty())
		Expect(tui.WrapText("hello", 0)).To(BeEmpty())
	})

	It("should keep short text on one line", func() {
		Expect(tui.WrapText("hello world", 20)).To(Equal([]string{"hello world"}))
	})

	It("should break at spaces", func() {
		Expect(tui.WrapText("hello wide world", 11)).To(Equal([]string{"hello wide", "world"}))
	})

	It("should hard-break words longer than the width", func() {
		lines := tui.WrapText("abcdefghij", 4)

		Expect(lines).To(Equal([]string{"abcd", "efgh", "ij"}))
	})

	It("should respect explicit newlines", func() {
		Expect(tui.WrapText("one\ntwo", 10)).To(Equal([]string{"one", "two"}))
	})

	It("should measure wide runes by cell width", func() {
		lines := tui.WrapText(strings.Repeat("漢", 5), 4)

		Expect(lines).To(Equal([]string{"漢漢", "漢漢", "漢"}))
	})
})

var _ = Describe("FadeTruncate", func() {
	It("should leave fitting text alone", func() {
		visible, fade := tui.FadeTruncate("Alice", 10)

		Expect(visible).To(Equal("Alice"))
		Expect(fade).To(Equal(0))
	})

	It("should cut overflowing text and fade its tail", func() {
		visible, fade := tui.FadeTruncate("Alexandria Ocasio", 8)

		Expect(visible).To(Equal("Alexandr"))
		Expect(fade).To(Equal(4))
	})

	It("should not fade more runes than are visible", func() {
		visible, fade := tui.FadeTruncate("abcdef", 2)

		Expect(visible).To(Equal("ab"))
		Expect(fade).To(Equal(2))
	})
})
