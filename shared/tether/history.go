package tether

const lengthHistorySize = 64

// lengthHistory is a ring buffer of length requests the authority has not
// acknowledged yet, used to predict the desired length while a request is
// in flight.
type lengthHistory struct {
	records [lengthHistorySize]LengthRequest
	nextSeq uint32
}

func (h *lengthHistory) store(req LengthRequest) {
	h.records[req.Seq%lengthHistorySize] = req
	h.nextSeq = req.Seq + 1
}

// get returns false if seq was never stored or its slot was overwritten.
func (h *lengthHistory) get(seq uint32) (LengthRequest, bool) {
	req := h.records[seq%lengthHistorySize]
	if req.Seq != seq || seq >= h.nextSeq {
		return LengthRequest{}, false
	}
	return req, true
}

// unacknowledged returns stored requests with lastAcked < Seq < nextSeq.
func (h *lengthHistory) unacknowledged(lastAcked uint32) []LengthRequest {
	var out []LengthRequest
	start := lastAcked + 1
	if h.nextSeq > lengthHistorySize && start < h.nextSeq-lengthHistorySize {
		start = h.nextSeq - lengthHistorySize
	}
	for seq := start; seq < h.nextSeq; seq++ {
		if req, ok := h.get(seq); ok {
			out = append(out, req)
		}
	}
	return out
}
