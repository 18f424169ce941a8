package trainer

import "math/bits"

// letterSet is a bitmask over the uppercase ASCII alphabet.
// Bit 0 is 'A', bit 25 is 'Z'.
type letterSet uint32

const allLetters letterSet = 1<<26 - 1

func bit(c byte) letterSet { return 1 << (c - 'A') }

func (s letterSet) has(c byte) bool { return s&bit(c) != 0 }

func (s *letterSet) add(c byte) { *s |= bit(c) }

func (s *letterSet) remove(c byte) { *s &^= bit(c) }

func (s letterSet) size() int { return bits.OnesCount32(uint32(s)) }

// wordLetters builds the set of distinct letters in a word.
func wordLetters(word string) letterSet {
	var s letterSet
	for i := 0; i < len(word); i++ {
		s.add(word[i])
	}
	return s
}
