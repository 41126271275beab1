/* ==================================================================================== *\
   compare.go

   Resource comparison harness, grounded on the Python evaluation/
   __main__.py: scores the adaptive overlay's total frame count against
   the always-on reference's (|V_H| * time_limit) and reports the ratio
   — the accuracy/cost trade-off the evaluation harness's job is to
   surface.
\* ==================================================================================== */
package surveillance

// Report is the outcome of comparing the adaptive overlay to the
// always-on reference over the same run.
type Report struct {
	AdaptiveFrames int
	ReferenceFrames int
	CostRatio       float64 // AdaptiveFrames / ReferenceFrames; lower is better
}

// Compare totals frames_processed across every node of each system and
// reports the adaptive system's cost as a fraction of the reference's.
func Compare(adaptive map[NodeID]ResourceStatistic, reference map[NodeID]ResourceStatistic) Report {
	adaptiveTotal := 0
	for _, s := range adaptive {
		adaptiveTotal += s.FramesProcessed
	}
	referenceTotal := 0
	for _, s := range reference {
		referenceTotal += s.FramesProcessed
	}

	ratio := 0.0
	if referenceTotal > 0 {
		ratio = float64(adaptiveTotal) / float64(referenceTotal)
	}

	return Report{
		AdaptiveFrames:  adaptiveTotal,
		ReferenceFrames: referenceTotal,
		CostRatio:       ratio,
	}
}

// DetectionLatency returns, for every overlay detection of `target`, the
// tick delta against the closest not-later ground-truth arrival in
// `groundTruth` — useful for judging whether the inference ETA's -1
// conservatism is paying off. A detection with no eligible
// ground-truth entry yet is skipped.
func DetectionLatency(overlayHistory []Detection, groundTruth []HistoryEntry) []int {
	latencies := make([]int, 0, len(overlayHistory))
	gi := 0
	for _, d := range overlayHistory {
		for gi < len(groundTruth) && groundTruth[gi].Tick <= d.Tick {
			gi++
		}
		if gi == 0 {
			continue
		}
		truth := groundTruth[gi-1]
		latencies = append(latencies, d.Tick-truth.Tick)
	}
	return latencies
}
