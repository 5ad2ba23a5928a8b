package buffer

type bufferSnapshot struct {
	text   string
	cursor Pos
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{text: b.Text(), cursor: b.cursor}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.undo = pushBounded(b.hist.undo, prev, limit)
	b.hist.redo = nil
}

func pushBounded(stack []bufferSnapshot, s bufferSnapshot, limit int) []bufferSnapshot {
	stack = append(stack, s)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}
	cur := b.snapshot()
	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)
	b.jumpTo(prev, cur, OriginUndo)
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}
	cur := b.snapshot()
	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]
	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = pushBounded(b.hist.undo, cur, limit)
	}
	b.jumpTo(next, cur, OriginRedo)
	return true
}

func (b *Buffer) jumpTo(target, cur bufferSnapshot, origin Origin) {
	versionBefore := b.version
	b.restore(target)
	if target.text == cur.text {
		if b.cursor != cur.cursor {
			b.version++
		}
		return
	}
	b.commitChange(origin, versionBefore, cur.cursor, Edit{
		RangeBefore: fullDocumentRange(cur.text),
		RangeAfter:  fullDocumentRange(target.text),
		InsertText:  target.text,
		DeletedText: cur.text,
	})
}
