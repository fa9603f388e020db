package sim

import "testing"

func TestSelfPlayManySeeds(t *testing.T) {
	for players := 1; players <= 8; players++ {
		for seed := int64(1); seed <= 40; seed++ {
			if err := RunSelfPlay(seed, players, 0, 5000); err != nil {
				t.Fatalf("players=%d: %v", players, err)
			}
		}
	}
}

func TestSelfPlayWithTarget(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		if err := RunSelfPlay(seed, 4, 100, 5000); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	}
}

func FuzzSelfPlay(f *testing.F) {
	f.Add(int64(1), uint8(4))
	f.Add(int64(42), uint8(7))
	f.Add(int64(20250211), uint8(1))
	f.Fuzz(func(t *testing.T, seed int64, players uint8) {
		n := int(players%8) + 1
		if err := RunSelfPlay(seed, n, 100, 5000); err != nil {
			t.Fatalf("self-play failed: %v", err)
		}
	})
}
