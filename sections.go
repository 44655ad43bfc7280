package gridpane

import (
	"sort"
	"sync"
)

// notifier implements SectionNotifier for the built-in oracles.
type notifier struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

func (n *notifier) OnSectionsResized(fn func()) Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return &subscription{n: n, id: id}
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

type subscription struct {
	n    *notifier
	id   int
	once sync.Once
}

func (s *subscription) Close() {
	s.once.Do(func() {
		s.n.mu.Lock()
		delete(s.n.subs, s.id)
		s.n.mu.Unlock()
	})
}

// UniformSections is a SectionOracle where every section has the same
// pixel size. It is the cheapest oracle: all queries are O(1).
type UniformSections struct {
	notifier
	count int
	size  int
}

// NewUniformSections creates an oracle with count sections of the given
// pixel size. Size is clamped to at least 1; count to at least 0.
func NewUniformSections(count, size int) *UniformSections {
	if count < 0 {
		count = 0
	}
	if size < 1 {
		size = 1
	}
	return &UniformSections{count: count, size: size}
}

// SectionAt returns the section covering offset.
func (u *UniformSections) SectionAt(offset int) (int, bool) {
	if offset < 0 || u.count == 0 {
		return 0, false
	}
	i := offset / u.size
	if i >= u.count {
		return 0, false
	}
	return i, true
}

// SectionPosition returns the pixel start of section index.
func (u *UniformSections) SectionPosition(index int) int { return index * u.size }

// SectionSize returns the shared section size.
func (u *UniformSections) SectionSize(int) int { return u.size }

// SectionCount returns the number of sections.
func (u *UniformSections) SectionCount() int { return u.count }

// SetSize changes the shared section size and fires the resize
// notification. Sizes below 1 are clamped.
func (u *UniformSections) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	if size == u.size {
		return
	}
	u.size = size
	u.notify()
}

// SetCount changes the section count and fires the resize notification.
func (u *UniformSections) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	if count == u.count {
		return
	}
	u.count = count
	u.notify()
}

// SectionList is a SectionOracle over an explicit list of per-section
// pixel sizes. Zero-size sections are allowed; they occupy no pixels and
// are never returned by SectionAt.
type SectionList struct {
	notifier
	sizes   []int
	offsets []int // prefix sums, len(sizes)+1, offsets[0] == 0
}

// NewSectionList creates an oracle from the given section sizes.
// Negative sizes are clamped to zero. The slice is copied.
func NewSectionList(sizes ...int) *SectionList {
	l := &SectionList{}
	l.sizes = make([]int, len(sizes))
	for i, sz := range sizes {
		if sz < 0 {
			sz = 0
		}
		l.sizes[i] = sz
	}
	l.rebuild()
	return l
}

func (l *SectionList) rebuild() {
	l.offsets = make([]int, len(l.sizes)+1)
	for i, sz := range l.sizes {
		l.offsets[i+1] = l.offsets[i] + sz
	}
}

// SectionAt returns the section covering offset, found by binary search
// over the prefix offsets.
func (l *SectionList) SectionAt(offset int) (int, bool) {
	if offset < 0 || offset >= l.offsets[len(l.offsets)-1] {
		return 0, false
	}
	// Smallest i with offset < offsets[i+1]; skips zero-size sections.
	i := sort.Search(len(l.sizes), func(i int) bool {
		return offset < l.offsets[i+1]
	})
	return i, true
}

// SectionPosition returns the pixel start of section index.
func (l *SectionList) SectionPosition(index int) int { return l.offsets[index] }

// SectionSize returns the pixel size of section index.
func (l *SectionList) SectionSize(index int) int { return l.sizes[index] }

// SectionCount returns the number of sections.
func (l *SectionList) SectionCount() int { return len(l.sizes) }

// TotalSize returns the summed pixel size of all sections.
func (l *SectionList) TotalSize() int { return l.offsets[len(l.offsets)-1] }

// SetSize changes one section's size and fires the resize notification.
// Out-of-range indices are ignored; negative sizes are clamped to zero.
func (l *SectionList) SetSize(index, size int) {
	if index < 0 || index >= len(l.sizes) {
		return
	}
	if size < 0 {
		size = 0
	}
	if l.sizes[index] == size {
		return
	}
	l.sizes[index] = size
	l.rebuild()
	l.notify()
}
