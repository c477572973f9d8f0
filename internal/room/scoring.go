package room

import (
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/equity"
	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
)

// scoreHand settles a complete hand: each half of the pot goes to the best
// Hold'em selection and the best Omaha selection, split evenly on ties. A
// seat that wins both halves outright scoops and collects the bonus from
// every opponent. Called with the room lock held and a five-card board.
func (r *Room) scoreHand() error {
	seats := r.inHandSeats()

	heRanks := make(map[string]poker.HandRank, len(seats))
	ploRanks := make(map[string]poker.HandRank, len(seats))
	for _, s := range seats {
		heRank, err := poker.EvaluateHoldem(s.PickHoldem, r.board)
		if err != nil {
			return integrityErr("holdem showdown for %s: %v", s.Name, err)
		}
		ploRank, err := poker.EvaluateOmaha(s.PickOmaha, r.board)
		if err != nil {
			return integrityErr("omaha showdown for %s: %v", s.Name, err)
		}
		heRanks[s.ID] = heRank
		ploRanks[s.ID] = ploRank
	}

	heWinners := bestSeats(seats, heRanks)
	ploWinners := bestSeats(seats, ploRanks)

	pot := r.cfg.Ante * len(seats)
	heShare := pot / 2 / len(heWinners)
	ploShare := pot / 2 / len(ploWinners)

	delta := make(map[string]int, len(seats))
	for _, s := range seats {
		delta[s.ID] = -r.cfg.Ante
	}
	for _, id := range heWinners {
		delta[id] += heShare
	}
	for _, id := range ploWinners {
		delta[id] += ploShare
	}

	var scoops []string
	if len(heWinners) == 1 && len(ploWinners) == 1 && heWinners[0] == ploWinners[0] {
		scoops = []string{heWinners[0]}
		if r.cfg.ScoopBonus > 0 {
			for _, s := range seats {
				if s.ID == heWinners[0] {
					delta[s.ID] += (len(seats) - 1) * r.cfg.ScoopBonus
				} else {
					delta[s.ID] -= r.cfg.ScoopBonus
				}
			}
		}
	}

	// Antes were already debited at the deal, so only the winnings (and
	// bonus transfers) move here.
	for _, s := range seats {
		s.Balance += delta[s.ID] + r.cfg.Ante
	}

	r.recordStats(seats, heWinners, ploWinners, scoops, delta)

	r.state = StateResults
	r.logger.Info("hand scored",
		"hand", r.handNumber, "pot", pot,
		"holdemWinners", len(heWinners), "omahaWinners", len(ploWinners),
		"scoop", len(scoops) == 1)

	r.emitter.Results(r.buildResults(seats, heWinners, ploWinners, scoops))
	return nil
}

// bestSeats returns the IDs holding the strongest rank, preserving seat
// order.
func bestSeats(seats []*Seat, ranks map[string]poker.HandRank) []string {
	var best poker.HandRank
	first := true
	for _, s := range seats {
		if first || poker.CompareRanks(ranks[s.ID], best) > 0 {
			best = ranks[s.ID]
			first = false
		}
	}
	var winners []string
	for _, s := range seats {
		if ranks[s.ID] == best {
			winners = append(winners, s.ID)
		}
	}
	return winners
}

func (r *Room) recordStats(seats []*Seat, heWinners, ploWinners, scoops []string, delta map[string]int) {
	playerOf := make(map[string]string, len(seats))
	ids := make([]string, 0, len(seats))
	for _, s := range seats {
		if s.PlayerID == "" {
			continue
		}
		playerOf[s.ID] = s.PlayerID
		ids = append(ids, s.PlayerID)
	}
	if len(ids) == 0 {
		return
	}

	r.sink.HandPlayed(ids)
	r.sink.VariantWon(poker.VariantHoldem, playerIDs(heWinners, playerOf))
	r.sink.VariantWon(poker.VariantOmaha, playerIDs(ploWinners, playerOf))
	for _, id := range scoops {
		if pid, ok := playerOf[id]; ok {
			r.sink.Scooped(pid)
		}
	}
	for seatID, pid := range playerOf {
		r.sink.NetDelta(pid, delta[seatID])
	}
}

func playerIDs(seatIDs []string, playerOf map[string]string) []string {
	out := make([]string, 0, len(seatIDs))
	for _, id := range seatIDs {
		if pid, ok := playerOf[id]; ok {
			out = append(out, pid)
		}
	}
	return out
}

func (r *Room) buildResults(seats []*Seat, heWinners, ploWinners, scoops []string) Results {
	picks := make(map[string]SeatPicks, len(seats))
	for _, s := range seats {
		picks[s.ID] = SeatPicks{
			Name:   s.Name,
			Hole:   poker.Strings(s.Hole),
			Holdem: poker.Strings(s.PickHoldem),
			Omaha:  poker.Strings(s.PickOmaha),
		}
	}

	final := Equities{
		Holdem: pinFinal(seats, heWinners),
		Omaha:  pinFinal(seats, ploWinners),
	}

	return Results{
		HandNumber:    r.handNumber,
		Board:         poker.Strings(r.board),
		HoldemWinners: heWinners,
		OmahaWinners:  ploWinners,
		Scoops:        scoops,
		Picks:         picks,
		FinalEquities: final,
	}
}

// pinFinal replaces simulated equity with the settled outcome: winners show
// an even split of 100, everyone else 0.
func pinFinal(seats []*Seat, winners []string) map[string]equity.Result {
	won := make(map[string]bool, len(winners))
	for _, id := range winners {
		won[id] = true
	}
	out := make(map[string]equity.Result, len(seats))
	for _, s := range seats {
		var res equity.Result
		if won[s.ID] {
			if len(winners) == 1 {
				res.Win = 100
			} else {
				res.Tie = 100 / float64(len(winners))
			}
		}
		out[s.ID] = res
	}
	return out
}
