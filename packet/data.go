package packet

import (
	"bytes"
	"encoding/binary"

	"splashsrv/data"
)

// Bridging helpers for the record and catalog types that have their own
// packed encodings.

func (r *reader) item() data.Item {
	return data.Item(r.u32())
}

func (w *writer) item(i data.Item) {
	w.u32(uint32(i))
}

func (r *reader) counted() data.CountedItem {
	return data.CountedItem(r.u32())
}

func (w *writer) counted(c data.CountedItem) {
	w.u32(uint32(c))
}

func (r *reader) paramTuple() data.ParamTuple {
	return data.ParamTuple{
		Power:   r.i16(),
		Control: r.i16(),
		Impact:  r.i16(),
		Spin:    r.i16(),
	}
}

func (w *writer) paramTuple(p data.ParamTuple) {
	w.i16(p.Power)
	w.i16(p.Control)
	w.i16(p.Impact)
	w.i16(p.Spin)
}

func (r *reader) appearance() data.Appearance {
	var words [data.AppearanceWords]uint32
	for i := range words {
		words[i] = r.u32()
	}
	a, err := data.UnpackAppearance(words)
	if err != nil {
		r.fail(err)
	}
	return a
}

func (w *writer) appearance(a data.Appearance) {
	words, err := a.Pack()
	if err != nil {
		w.fail(err)
		return
	}
	for _, v := range words {
		w.u32(v)
	}
}

func (r *reader) sellItem() data.SellItem {
	var words [data.SellItemWords]uint32
	for i := range words {
		words[i] = r.u32()
	}
	return data.UnpackSellItem(words)
}

func (w *writer) sellItem(s data.SellItem) {
	words, err := s.Pack()
	if err != nil {
		w.fail(err)
		return
	}
	for _, v := range words {
		w.u32(v)
	}
}

func (r *reader) sellCaddy() data.SellCaddy {
	var words [data.SellCaddyWords]uint32
	for i := range words {
		words[i] = r.u32()
	}
	return data.UnpackSellCaddy(words)
}

func (w *writer) sellCaddy(s data.SellCaddy) {
	for _, v := range s.Pack() {
		w.u32(v)
	}
}

// binread decodes a flat fixed-width struct straight off the buffer.
func (r *reader) binread(v any) {
	n := binary.Size(v)
	b := r.take(n)
	if b == nil {
		return
	}
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, v); err != nil {
		r.fail(err)
	}
}

func (w *writer) binwrite(v any) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		w.fail(err)
		return
	}
	w.bytes(buf.Bytes())
}

func (r *reader) cRecord() data.CRecord {
	b := r.take(49)
	if b == nil {
		return data.CRecord{}
	}
	var c data.CRecord
	if err := c.UnmarshalBinary(b); err != nil {
		r.fail(err)
	}
	return c
}

func (w *writer) cRecord(c data.CRecord) {
	b, err := c.MarshalBinary()
	if err != nil {
		w.fail(err)
		return
	}
	w.bytes(b)
}

func (r *reader) gameReport() data.GameReport {
	var g data.GameReport
	var words [data.GameReportWords]uint32
	for i := range words {
		words[i] = r.u32()
	}
	g.UnpackWords(words)
	g.HalfwayScore = r.i8()
	g.Score = r.i8()
	for i := range g.Holes {
		g.Holes[i] = r.holeReport()
	}
	return g
}

func (w *writer) gameReport(g data.GameReport) {
	for _, v := range g.PackWords() {
		w.u32(v)
	}
	w.i8(g.HalfwayScore)
	w.i8(g.Score)
	for _, h := range g.Holes {
		w.holeReport(h)
	}
}

func (r *reader) holeReport() data.HoleReport {
	var h data.HoleReport
	h.Score = r.i8()
	var words [data.HoleReportWords]uint32
	for i := range words {
		words[i] = r.u32()
	}
	h.UnpackWords(words)
	return h
}

func (w *writer) holeReport(h data.HoleReport) {
	w.i8(h.Score)
	for _, v := range h.PackWords() {
		w.u32(v)
	}
}
