package network

import (
	"github.com/asgmods/grapplehook/shared/gamemath"
	"github.com/asgmods/grapplehook/shared/messages"
	"github.com/go-gl/mathgl/mgl64"
)

const predictionBufferSize = 64

// InputRecord stores an input alongside the shooter position it was sent at.
type InputRecord struct {
	Input    messages.PlayerInput
	Position mgl64.Vec3
}

// PredictionBuffer is a ring buffer of recent inputs, used to measure how
// far the local view drifts from the server once an input is acknowledged.
type PredictionBuffer struct {
	history [predictionBufferSize]InputRecord
	nextSeq uint32
}

// Store saves an input and the local position at send time.
func (pb *PredictionBuffer) Store(input messages.PlayerInput, pos mgl64.Vec3) {
	pb.history[input.Sequence%predictionBufferSize] = InputRecord{Input: input, Position: pos}
	pb.nextSeq = input.Sequence + 1
}

// Get retrieves a stored record by sequence number. Returns false if not found
// or if the slot has been overwritten.
func (pb *PredictionBuffer) Get(seq uint32) (InputRecord, bool) {
	record := pb.history[seq%predictionBufferSize]
	if record.Input.Sequence != seq || seq >= pb.nextSeq {
		return InputRecord{}, false
	}
	return record, true
}

// NextSeq returns the next sequence number to send.
func (pb *PredictionBuffer) NextSeq() uint32 {
	if pb.nextSeq == 0 {
		return 1
	}
	return pb.nextSeq
}

// Unacknowledged returns the stored inputs after lastAcked.
func (pb *PredictionBuffer) Unacknowledged(lastAcked uint32) []InputRecord {
	var results []InputRecord
	for seq := lastAcked + 1; seq < pb.nextSeq; seq++ {
		if record, ok := pb.Get(seq); ok {
			results = append(results, record)
		}
	}
	return results
}

// PredictionError is the distance between the position recorded with seq
// and the server's position.
func (pb *PredictionBuffer) PredictionError(seq uint32, server mgl64.Vec3) float64 {
	record, ok := pb.Get(seq)
	if !ok {
		return 0
	}
	return gamemath.Distance(record.Position, server)
}
