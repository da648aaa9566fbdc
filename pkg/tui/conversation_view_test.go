package tui_test

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/logger"
	"github.com/killallgit/convo/pkg/tui"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rivo/tview"
)

const seed = "hello world"

// outOfRange is a random source that always draws past the end
type outOfRange struct{}

func (outOfRange) IntN(n int) int { return n }

var _ = Describe("ConversationView", func() {
	var (
		screen   *tui.TestScreen
		recorder *tui.ActionRecorder
		logs     *bytes.Buffer
		view     *tui.ConversationView
		ticks    int
	)

	clock := func() time.Time {
		ticks++
		return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(ticks) * time.Minute)
	}

	newView := func(opts ...tui.ViewOption) *tui.ConversationView {
		identity, err := conversation.NewIdentity("Alice", seed)
		Expect(err).ToNot(HaveOccurred())

		base := []tui.ViewOption{
			tui.WithActions(recorder.Actions()),
			tui.WithLogger(logger.NewWithWriter(logger.LevelDebug, logs).Component("conversation_view")),
			tui.WithGeneratorOptions(
				conversation.WithRand(rand.New(rand.NewPCG(7, 11))),
				conversation.WithClock(clock),
			),
		}
		v, err := tui.NewConversationView(identity, append(base, opts...)...)
		Expect(err).ToNot(HaveOccurred())
		v.SetRect(0, 0, 80, 24)
		return v
	}

	draw := func() {
		view.Draw(screen)
		screen.Show()
	}

	key := func(k tcell.Key, r rune) *tcell.EventKey {
		return tcell.NewEventKey(k, r, tcell.ModNone)
	}

	positions := func() []int {
		var out []int
		for _, msg := range view.VisibleMessages() {
			out = append(out, msg.Position)
		}
		return out
	}

	BeforeEach(func() {
		screen = tui.NewTestScreen()
		err := screen.Init()
		Expect(err).ToNot(HaveOccurred())
		screen.SetSize(80, 24)
		screen.Clear()

		ticks = 0
		recorder = tui.NewActionRecorder()
		logs = &bytes.Buffer{}
		view = newView()
	})

	AfterEach(func() {
		screen.Fini()
	})

	Describe("Construction", func() {
		It("should reject an empty last message", func() {
			_, err := tui.NewConversationView(conversation.Identity{Name: "Alice"})

			Expect(errors.Is(err, conversation.ErrInvalidArgument)).To(BeTrue())
		})

		It("should reject an empty name", func() {
			_, err := tui.NewConversationView(conversation.Identity{LastMessage: seed})

			Expect(errors.Is(err, conversation.ErrInvalidArgument)).To(BeTrue())
		})

		It("should keep the identity and header", func() {
			Expect(view.Identity().Name).To(Equal("Alice"))
			Expect(view.Header().Name()).To(Equal("Alice"))
			Expect(view.Offset()).To(BeZero())
		})
	})

	Describe("Drawing", func() {
		It("should draw the header, the messages and the trailing label", func() {
			draw()

			Expect(screen.RowText(1)).To(ContainSubstring("Alice"))
			Expect(screen.RowText(23)).To(ContainSubstring("Messages are synthesized locally"))
			Expect(view.VisibleMessages()).ToNot(BeEmpty())
		})

		It("should only show suffixes of the last message", func() {
			draw()

			for _, msg := range view.VisibleMessages() {
				Expect(msg.Text).ToNot(BeEmpty())
				Expect(strings.HasSuffix(seed, msg.Text)).To(BeTrue(), "%q is not a suffix of %q", msg.Text, seed)
			}
		})

		It("should build exactly the positions in view", func() {
			draw()

			// 20 list rows hold six full bubbles and the top of a seventh
			Expect(positions()).To(Equal([]int{0, 1, 2, 3, 4, 5, 6}))
			Expect(logs.String()).To(ContainSubstring("conversation_view: built message position=0"))
		})

		It("should keep messages stable across redraws", func() {
			draw()
			first := view.VisibleMessages()

			draw()
			Expect(view.VisibleMessages()).To(Equal(first))
		})

		It("should build a new message when a position scrolls back into view", func() {
			draw()
			original := view.VisibleMessages()[0]
			Expect(original.Position).To(BeZero())

			view.ScrollBy(1)
			draw()
			Expect(positions()).ToNot(ContainElement(0))

			view.ScrollBy(-1)
			draw()
			rebuilt := view.VisibleMessages()[0]
			Expect(rebuilt.Position).To(BeZero())
			Expect(rebuilt.Timestamp).To(BeTemporally(">", original.Timestamp))
		})

		It("should render build failures as error rows", func() {
			view = newView(tui.WithGeneratorOptions(conversation.WithRand(outOfRange{})))

			Expect(func() { draw() }).ToNot(Panic())
			Expect(screen.RowText(3)).To(ContainSubstring("invalid argument"))
			Expect(view.VisibleMessages()).To(BeEmpty())
			Expect(logs.String()).To(ContainSubstring("failed to build message"))
		})
	})

	Describe("Scrolling", func() {
		It("should never scroll above the first position", func() {
			view.ScrollBy(-3)
			Expect(view.Offset()).To(BeZero())

			Expect(view.HandleKey(key(tcell.KeyUp, 0))).To(BeTrue())
			Expect(view.Offset()).To(BeZero())
		})

		It("should scroll without an upper bound", func() {
			view.ScrollBy(100000)
			draw()

			Expect(view.Offset()).To(Equal(100000))
			Expect(positions()[0]).To(Equal(100000))
		})

		It("should scroll by item with arrows and vi keys", func() {
			view.HandleKey(key(tcell.KeyDown, 0))
			view.HandleKey(key(tcell.KeyRune, 'j'))
			Expect(view.Offset()).To(Equal(2))

			view.HandleKey(key(tcell.KeyRune, 'k'))
			Expect(view.Offset()).To(Equal(1))

			view.HandleKey(key(tcell.KeyHome, 0))
			Expect(view.Offset()).To(BeZero())
		})

		It("should page by the number of fully visible items", func() {
			draw()

			view.HandleKey(key(tcell.KeyPgDn, 0))
			Expect(view.Offset()).To(Equal(6))

			view.HandleKey(key(tcell.KeyPgUp, 0))
			Expect(view.Offset()).To(BeZero())
		})

		It("should scroll with the mouse wheel", func() {
			Expect(view.HandleMouse(tview.MouseScrollDown, 10, 10)).To(BeTrue())
			Expect(view.Offset()).To(Equal(1))

			Expect(view.HandleMouse(tview.MouseScrollUp, 10, 10)).To(BeTrue())
			Expect(view.Offset()).To(BeZero())
		})
	})

	Describe("Actions", func() {
		It("should trigger the call actions from the keyboard", func() {
			Expect(view.HandleKey(key(tcell.KeyRune, 'v'))).To(BeTrue())
			Expect(view.HandleKey(key(tcell.KeyRune, 'c'))).To(BeTrue())

			Expect(recorder.Count("video_call")).To(Equal(1))
			Expect(recorder.Count("call")).To(Equal(1))
		})

		It("should trigger the call actions from header clicks", func() {
			draw()

			Expect(view.HandleMouse(tview.MouseLeftClick, 60, 1)).To(BeTrue())
			Expect(recorder.Count("video_call")).To(Equal(1))
		})

		It("should leave unknown keys alone", func() {
			Expect(view.HandleKey(key(tcell.KeyRune, 'x'))).To(BeFalse())
		})

		It("should do nothing without action handlers", func() {
			identity, err := conversation.NewIdentity("Alice", seed)
			Expect(err).ToNot(HaveOccurred())
			bare, err := tui.NewConversationView(identity)
			Expect(err).ToNot(HaveOccurred())

			Expect(func() {
				bare.HandleKey(key(tcell.KeyRune, 'v'))
				bare.HandleKey(key(tcell.KeyRune, 'c'))
				bare.SelectMenuOption(tui.MenuSearch)
			}).ToNot(Panic())
		})
	})

	Describe("Overflow menu", func() {
		It("should open below the overflow button and select search", func() {
			draw()
			view.HandleKey(key(tcell.KeyRune, 'm'))
			Expect(view.MenuOpen()).To(BeTrue())

			draw()
			x, y, found := screen.Locate("Search")
			Expect(found).To(BeTrue())
			Expect(x).To(Equal(65))
			Expect(y).To(Equal(4))

			Expect(view.HandleKey(key(tcell.KeyEnter, 0))).To(BeTrue())
			Expect(recorder.Count("search")).To(Equal(1))
			Expect(view.MenuOpen()).To(BeFalse())
		})

		It("should swallow header shortcuts while open", func() {
			view.ToggleMenu()

			Expect(view.HandleKey(key(tcell.KeyRune, 'v'))).To(BeFalse())
			Expect(recorder.Count("video_call")).To(BeZero())
		})

		It("should close on escape or a second toggle", func() {
			view.ToggleMenu()
			view.HandleKey(key(tcell.KeyEscape, 0))
			Expect(view.MenuOpen()).To(BeFalse())

			view.HandleKey(key(tcell.KeyRune, 'm'))
			view.HandleKey(key(tcell.KeyRune, 'm'))
			Expect(view.MenuOpen()).To(BeFalse())
		})

		It("should open from a click on the overflow button", func() {
			draw()

			Expect(view.HandleMouse(tview.MouseLeftClick, 78, 1)).To(BeTrue())
			Expect(view.MenuOpen()).To(BeTrue())
		})

		It("should select search by clicking it", func() {
			draw()
			view.ToggleMenu()
			draw()

			Expect(view.HandleMouse(tview.MouseLeftClick, 70, 4)).To(BeTrue())
			Expect(recorder.Count("search")).To(Equal(1))
			Expect(view.MenuOpen()).To(BeFalse())
		})

		It("should close when clicking elsewhere", func() {
			draw()
			view.ToggleMenu()
			draw()

			Expect(view.HandleMouse(tview.MouseLeftClick, 10, 15)).To(BeTrue())
			Expect(view.MenuOpen()).To(BeFalse())
			Expect(recorder.Count("search")).To(BeZero())
		})
	})
})
