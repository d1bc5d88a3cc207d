// SPDX-License-Identifier: MIT

package neuralnet

// StopCondition decides, after every epoch, whether training ends. It sees
// the best validation accuracy so far and the number of consecutive epochs
// that did not improve on it.
type StopCondition func(bestAccuracy float64, notImproved int) bool

// StopAfterStall stops once n consecutive epochs brought no improvement.
func StopAfterStall(n int) StopCondition {
	return func(_ float64, notImproved int) bool { return notImproved >= n }
}

// StopAtAccuracy stops once the best accuracy reaches target, or after
// stall epochs without improvement, whichever comes first.
func StopAtAccuracy(target float64, stall int) StopCondition {
	return func(best float64, notImproved int) bool {
		return best >= target || notImproved >= stall
	}
}
