package random

// Sequence is any indexed container that can swap two of its elements.
type Sequence interface {
	Len() int
	Swap(i, j int)
}

// Shuffle permutes the slice in place using the Fisher-Yates algorithm and
// returns the same slice.
//
// Exactly max(len(s)-1, 0) values are drawn from src. src.Draw(i) must
// return a value in [0, i]; values outside that range are not checked.
func Shuffle[T any](s []T, src Source) []T {
	for i := len(s) - 1; i > 0; i-- {
		j := src.Draw(i)
		s[i], s[j] = s[j], s[i]
	}
	return s
}

// ShuffleSequence is Shuffle for containers that are not plain slices.
func ShuffleSequence[S Sequence](seq S, src Source) S {
	for i := seq.Len() - 1; i > 0; i-- {
		// j == i still swaps; each step consumes exactly one draw.
		seq.Swap(i, src.Draw(i))
	}
	return seq
}
