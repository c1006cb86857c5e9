package main

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		bc, read2, expected string
	}{
		{"AACCGGTTACGTTGCA", "GGGGGTGCAACGTAACCGGTTCCCC", "Baits:\tTGCAACGT\tAACCGGTT\nMatch:\tExactMatch\nCut:\t5\nTrimmed:\tGGGGG\n"},
		{"AACCGGTTACGTTGCA", "GGGTGCAACGTAACCGGTACCCC", "Baits:\tTGCAACGT\tAACCGGTT\nMatch:\tOneMismatchMatch\nCut:\t3\nTrimmed:\tGGG\n"},
		{"AACCGGTTACGTTGCA", "GATTACA", "Baits:\tTGCAACGT\tAACCGGTT\nMatch:\tNoMatch\nTrimmed:\tGATTACA\n"},
	}
	for _, test := range tests {
		if actual := check(test.bc, test.read2); actual != test.expected {
			t.Errorf("problem with check(%s, %s). expected:\n%s\ngot:\n%s", test.bc, test.read2, test.expected, actual)
		}
	}
}
