package ru

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		seq  Seq
		want string
	}{
		{
			name: "nya",
			seq:  Seq{NewConsonant(N, true), NewVowel(A)},
			want: "ня",
		},
		{
			name: "hard sign after consonant",
			seq: Seq{
				NewConsonant(P, false), NewVowel(O), NewConsonant(D, false),
				NewPalatal(J), NewVowel(E), NewConsonant(Z, false), NewConsonant(D, false),
			},
			want: "подъезд",
		},
		{
			name: "final glide",
			seq:  Seq{NewConsonant(H, false), NewVowel(U), NewPalatal(J)},
			want: "хуй",
		},
		{
			name: "intervocalic glide",
			seq: Seq{
				NewVowel(A), NewConsonant(H, false), NewVowel(U), NewPalatal(J),
				NewVowel(E), NewConsonant(T, true),
			},
			want: "ахуеть",
		},
		{
			name: "initial glide",
			seq: Seq{
				NewPalatal(J), NewVowel(E), NewConsonant(B, false), NewVowel(A),
				NewConsonant(T, true),
			},
			want: "ебать",
		},
		{
			name: "hushing sibilant pair",
			seq: Seq{
				NewConsonant(Sh, true), NewVowel(U), NewConsonant(Sh, false), NewVowel(A),
			},
			want: "щуша",
		},
		{
			name: "palatalized sibilant takes no soft sign",
			seq:  Seq{NewVowel(O), NewConsonant(Sh, true)},
			want: "ощ",
		},
		{
			name: "affricate",
			seq: Seq{
				NewPalatal(Ch), NewVowel(A), NewConsonant(K, false), NewConsonant(R, false),
				NewVowel(A),
			},
			want: "чакра",
		},
		{
			name: "glide before consonant",
			seq:  Seq{NewVowel(A), NewPalatal(J), NewConsonant(T, false)},
			want: "айт",
		},
		{
			name: "glide after space is silent before a vowel",
			seq:  Seq{NewConsonant(N, false), SpaceUnit(), NewPalatal(J), NewVowel(U)},
			want: "н ю",
		},
		{
			name: "all plain vowels",
			seq:  Seq{NewVowel(A), NewVowel(E), NewVowel(I), NewVowel(O), NewVowel(U)},
			want: "аэыоу",
		},
		{
			name: "all iotated vowels",
			seq: Seq{
				NewConsonant(L, true), NewVowel(A), NewConsonant(L, true), NewVowel(E),
				NewConsonant(L, true), NewVowel(I), NewConsonant(L, true), NewVowel(O),
				NewConsonant(L, true), NewVowel(U),
			},
			want: "лялелилёлю",
		},
		{
			name: "palatalized consonant before space",
			seq:  Seq{NewConsonant(M, true), SpaceUnit(), NewVowel(A)},
			want: "мь а",
		},
		{
			name: "empty",
			seq:  Seq{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.seq))
			assert.Equal(t, tt.want, tt.seq.String())
		})
	}
}

func TestRender_DoesNotModifySequence(t *testing.T) {
	seq := Seq{NewConsonant(M, true), NewConsonant(M, true), NewVowel(A), NewPalatal(J)}
	orig := make(Seq, len(seq))
	copy(orig, seq)

	Render(seq)
	assert.Equal(t, orig, seq)
}

func TestContextAt(t *testing.T) {
	seq := Seq{
		NewConsonant(Sh, true), NewVowel(U), NewPalatal(Ch), NewConsonant(T, false),
		NewPalatal(J), SpaceUnit(),
	}

	tests := []struct {
		name string
		pos  int
		want Context
	}{
		{"start", 0, Context{NextIsVowel: true}},
		{"after palatalized sibilant", 1, Context{PrevPalatalized: true, PrevIsConsonant: true, PrevSuppressesIotation: true}},
		{"after vowel", 2, Context{}},
		{"after affricate", 3, Context{PrevPalatalized: true, PrevIsConsonant: true, PrevSuppressesIotation: true}},
		{"after plain consonant", 4, Context{PrevIsConsonant: true}},
		{"after glide", 5, Context{PrevPalatalized: true, PrevIsConsonant: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContextAt(seq, tt.pos))
		})
	}
}

func TestPhonemeString(t *testing.T) {
	seq := Seq{NewConsonant(M, true), NewVowel(A), SpaceUnit(), NewPalatal(J), NewConsonant(Ts, false)}
	var names []string
	for _, p := range seq {
		names = append(names, p.String())
	}
	assert.Equal(t, []string{"m'", "a", "_", "j", "ts"}, names)
}
