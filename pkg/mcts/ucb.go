package mcts

import "math"

// UCB1 score of a child with given stats:
//
//	reward/visits + c * sqrt(ln(parentVisits)) / visits
//
// The result may be NaN or Inf for degenerate inputs, compare it with totalCmp
func UCB1(reward int64, visits, parentVisits uint32, c float64) float64 {
	exploitation := float64(reward) / float64(visits)
	exploration := c * math.Sqrt(math.Log(float64(parentVisits))) / float64(visits)
	return exploitation + exploration
}

func (node *Node[A]) ucb(c float64, parentVisits uint32) float64 {
	return UCB1(node.Reward, node.Visits, parentVisits, c)
}

// IEEE 754 totalOrder key: -NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN
func totalOrderKey(f float64) int64 {
	bits := int64(math.Float64bits(f))
	return bits ^ int64(uint64(bits>>63)>>1)
}

// Compare 2 floats using the total order, returns -1, 0 or 1
func totalCmp(a, b float64) int {
	ka, kb := totalOrderKey(a), totalOrderKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return 0
}
