package gs

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"splashsrv/data"
	"splashsrv/packet"
)

// chrData flattens a stored character into its wire form.
func chrData(chrUID packet.ChrUID, c data.Character) packet.ChrData {
	return packet.ChrData{
		ChrUID:       chrUID,
		Type:         int16(c.Appearance.Char.Index()),
		Class:        c.ClassCap,
		ParamPower:   c.Exp.Power,
		ParamControl: c.Exp.Control,
		ParamImpact:  c.Exp.Impact,
		ParamSpin:    c.Exp.Spin,
		Params:       c.Settings,
		Appearance:   c.Appearance,
		Club:         c.Club,
		Ball:         c.Ball,
		Caddie:       c.Caddie,
	}
}

// handleFirstChar creates the account's one starting character. A
// repeated request is dropped without a reply; the client only sends it
// once per fresh account.
func (st *state) handleFirstChar(p *player, appearance data.Appearance) {
	if p.user.DefaultChrUID != -1 {
		st.log.Warn("first character already created", zap.Int32("cid", p.cid))
		return
	}

	chrUID, char, err := st.store.CreateCharacter(context.Background(), p.uid, appearance)
	if err != nil {
		st.log.Error("character creation failed", zap.Int32("uid", p.uid), zap.Error(err))
		st.send(p, packet.FirstCharResult{Status: packet.StatusErr})
		return
	}

	p.user.DefaultChrUID = chrUID
	p.characters = append(p.characters, data.OwnedCharacter{ChrUID: chrUID, Char: char})
	st.saveUser(p)
	st.send(p, packet.FirstCharResult{Status: packet.StatusOK})
}

func (st *state) handleCharData(p *player, pid int16, cid packet.CID, chrUID packet.ChrUID) {
	target, ok := st.players[cid]
	if !ok {
		st.log.Warn("character request for unknown session", zap.Int32("cid", cid))
		return
	}
	oc := target.character(chrUID)
	if oc == nil {
		st.log.Warn("character request for unknown character",
			zap.Int32("cid", cid), zap.Int32("chr_uid", chrUID))
		return
	}
	st.sendPID(p, pid, packet.CharData{
		CID:  target.cid,
		UID:  target.uid,
		Data: chrData(oc.ChrUID, oc.Char),
	})
}

func (st *state) handleAllCharData(p *player, cid packet.CID) {
	target, ok := st.players[cid]
	if !ok {
		st.log.Warn("character roster request for unknown session", zap.Int32("cid", cid))
		return
	}
	for _, oc := range target.characters {
		st.send(p, packet.CharData{
			CID:  target.cid,
			UID:  target.uid,
			Data: chrData(oc.ChrUID, oc.Char),
		})
	}
}

func (st *state) handleAppearance(p *player, pid int16, cid packet.CID) {
	target, ok := st.players[cid]
	if !ok {
		st.log.Warn("appearance request for unknown session", zap.Int32("cid", cid))
		return
	}
	oc := target.character(target.user.DefaultChrUID)
	if oc == nil {
		st.log.Warn("appearance request before character creation", zap.Int32("cid", cid))
		return
	}
	st.sendPID(p, pid, packet.Appearance{CID: target.cid, Data: oc.Char.Appearance})
}

func (st *state) handleCurrentChar(p *player, pid int16, cid packet.CID) {
	target, ok := st.players[cid]
	if !ok {
		st.log.Warn("active character request for unknown session", zap.Int32("cid", cid))
		return
	}
	st.sendPID(p, pid, packet.CurrentChar{CID: target.cid, ChrUID: target.user.DefaultChrUID})
}

// handleChangeAppearance applies a new look to one of the sender's own
// characters.
func (st *state) handleChangeAppearance(p *player, m packet.ChangeAppearanceRequest) {
	if m.CID != p.cid {
		st.log.Error("appearance change for another session",
			zap.Int32("cid", p.cid), zap.Int32("target", m.CID))
		st.send(p, packet.ChangeAppearanceResult{Status: packet.StatusErr})
		return
	}
	oc := p.character(m.ChrUID)
	if oc == nil {
		st.send(p, packet.ChangeAppearanceResult{Status: packet.StatusErr})
		return
	}
	oc.Char.Appearance = m.Data
	st.store.WriteCharacter(oc.ChrUID, oc.Char)
	st.send(p, packet.ChangeAppearanceResult{Status: packet.StatusOK})
}

func (st *state) handleCharParam(p *player, m packet.CharParamRequest) {
	oc := p.character(m.ChrUID)
	if oc == nil {
		st.send(p, packet.CharParamResult{Status: packet.StatusErr})
		return
	}
	oc.Char.ClassCap = m.Class
	oc.Char.Settings = m.Params
	oc.Char.Club = m.Club
	oc.Char.Ball = m.Ball
	oc.Char.Caddie = m.Caddie
	st.store.WriteCharacter(oc.ChrUID, oc.Char)
	st.send(p, packet.CharParamResult{Status: packet.StatusOK})
}

func (st *state) handleSetName(p *player, m packet.SetNameRequest) {
	name := strings.TrimSpace(m.Name)
	if err := st.store.SetPlayerName(context.Background(), p.uid, name); err != nil {
		st.log.Warn("name change rejected",
			zap.Int32("uid", p.uid), zap.String("name", name), zap.Error(err))
		st.send(p, packet.SetNameResult{Status: packet.StatusErr})
		return
	}
	p.name = name
	st.send(p, packet.SetNameResult{Status: packet.StatusOK})
}

func (st *state) handleCourseRecord(p *player, pid int16, m packet.CourseRecordRequest) {
	record, err := st.store.CourseRecord(context.Background(), m.UID, m.Course, m.Season, m.HoleIdx)
	status := packet.StatusOK
	if err != nil {
		st.log.Error("course record lookup failed", zap.Int32("uid", m.UID), zap.Error(err))
		record = data.NewCRecord()
		status = packet.StatusErr
	}
	st.sendPID(p, pid, packet.CourseRecord{
		UID:     m.UID,
		Course:  m.Course,
		Season:  m.Season,
		HoleIdx: m.HoleIdx,
		Data:    record,
		Status:  status,
	})
}
