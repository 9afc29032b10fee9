package random

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// recoverError runs f and returns the error it panicked with, or nil.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var ok bool
		if err, ok = r.(error); !ok {
			t.Fatalf("panicked with non-error value %#v", r)
		}
	}()
	f()
	return nil
}

func TestChoice(t *testing.T) {
	type Thing struct {
		chosenCount int
	}

	choices := []*Thing{
		{},
		{},
		{},
		{},
		{},
	}

	const N = 100
	for i := 0; i < N; i++ {
		chosen := Choice(choices)
		chosen.chosenCount += 1
	}

	for i, thing := range choices {
		t.Logf("Thing %d/%d was chosen %d times", i+1, len(choices), thing.chosenCount)
		if thing.chosenCount == 0 {
			t.Fatalf("Some element was never chosen in %d random choices!", N)
		}
	}
}

func TestChoiceGeneric(t *testing.T) {
	choices := []string{
		"Hello",
		"World",
		"How",
		"Are",
		"You",
		"?",
	}

	counts := make(map[string]int)
	const N = 100
	for i := 0; i < N; i++ {
		chosen := Choice(choices)
		counts[chosen] += 1
	}

	for i, s := range choices {
		count, present := counts[s]
		t.Logf("Item %d/%d was chosen %d times", i+1, len(choices), count)
		if !present {
			t.Fatalf("Some element was never chosen in %d random choices!", N)
		}
	}
}

func TestChoiceIndexFollowsSource(t *testing.T) {
	things := []string{"a", "b", "c", "d"}
	src := WithSource(Sequence(0, 0.25, 0.49, 0.5, 0.999))

	var got []string
	for range 5 {
		got = append(got, Choice(things, src))
	}
	qt.Assert(t, qt.DeepEquals(got, []string{"a", "b", "b", "c", "d"}))
}

func TestChoiceSingleItem(t *testing.T) {
	for _, v := range []float64{0, 0.3, 0.999999} {
		qt.Assert(t, qt.Equals(Choice([]int{42}, WithSource(Fixed(v))), 42))
	}
}

func TestChoiceRoughlyUniform(t *testing.T) {
	const (
		numThings = 4
		N         = 20000
	)
	things := []int{0, 1, 2, 3}
	counts := make([]int, numThings)
	for range N {
		counts[Choice(things)]++
	}
	expected := N / numThings
	for i, count := range counts {
		t.Logf("Index %d was chosen %d times", i, count)
		// Roughly ten standard deviations either side.
		qt.Check(t, qt.IsTrue(count > expected-600 && count < expected+600),
			qt.Commentf("index %d chosen %d times, expected about %d", i, count, expected))
	}
}

func TestChoiceEmptyPanics(t *testing.T) {
	err := recoverError(t, func() {
		Choice([]int{})
	})
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidArgument))
}

func TestChoices(t *testing.T) {
	things := []string{"x", "y", "z"}
	got := Choices(things, 10)
	qt.Assert(t, qt.HasLen(got, 10))
	for _, v := range got {
		qt.Check(t, qt.SliceContains(things, v))
	}
}

func TestChoicesWithReplacement(t *testing.T) {
	got := Choices([]int{7, 8}, 5, WithSource(Fixed(0.9)))
	qt.Assert(t, qt.DeepEquals(got, []int{8, 8, 8, 8, 8}))
}

func TestChoicesZero(t *testing.T) {
	got := Choices([]int{}, 0)
	qt.Assert(t, qt.IsNotNil(got))
	qt.Assert(t, qt.HasLen(got, 0))
}

func TestChoicesInvalid(t *testing.T) {
	err := recoverError(t, func() {
		Choices([]int{1, 2}, -1)
	})
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidArgument))

	err = recoverError(t, func() {
		Choices([]int{}, 3)
	})
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidArgument))
}

func TestSample(t *testing.T) {
	things := []int{1, 2, 3, 4, 5}
	got := Sample(things, 3)
	qt.Assert(t, qt.HasLen(got, 3))

	seen := make(map[int]bool)
	for _, v := range got {
		qt.Check(t, qt.SliceContains(things, v))
		qt.Check(t, qt.IsFalse(seen[v]), qt.Commentf("%d sampled twice", v))
		seen[v] = true
	}
	qt.Assert(t, qt.DeepEquals(things, []int{1, 2, 3, 4, 5}))
}

func TestSampleLargerThanInput(t *testing.T) {
	things := []string{"a", "b", "c"}
	got := Sample(things, 10)
	qt.Assert(t, qt.HasLen(got, 3))
	qt.Assert(t, qt.DeepEquals(sortedCopy(got), things))
}

func TestSampleDoesNotAlias(t *testing.T) {
	things := []int{1, 2, 3}
	got := Sample(things, 2)
	got = append(got, 99)
	got[0] = -1
	qt.Assert(t, qt.DeepEquals(things, []int{1, 2, 3}))
}

func TestSampleInvalid(t *testing.T) {
	err := recoverError(t, func() {
		Sample([]int{1}, -2)
	})
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidArgument))
}
