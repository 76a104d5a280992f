package main

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"slices"

	c "gitea.cmcode.dev/cmcode/loan-wizard-tui/constants"

	"gopkg.in/yaml.v3"
)

func initializeUndo(b []byte, noGz bool) {
	if noGz {
		LW.UndoBuffer = [][]byte{b}
	} else {
		var err error

		bgz, err := compress(b)
		if err != nil {
			setDraftStatus(fmt.Sprintf(
				"%v%v%v",
				LW.Colors["DraftStatusTextError"],
				LW.T["UndoBufferConfigCompressionError"],
				c.Reset,
			))
		}

		LW.UndoBuffer = [][]byte{bgz}
	}

	LW.UndoBufferPos = 0
}

// sets the LW.SelectedDraft & config to the value specified by the current
// undo buffer
//
// warning: naively assumes that the LW.UndoBufferPos has already been set to a
// valid value and updates the currently selected config & draft accordingly
func pushUndoBufferChangeToConfig() {
	id := LW.SelectedDraft.ID

	b := LW.UndoBuffer[LW.UndoBufferPos]

	if !LW.Config.DisableGzipCompressionInUndoBuffer {
		var err error

		b, err = decompress(b)
		if err != nil {
			setDraftStatus(fmt.Sprintf(
				"%v%v%v",
				LW.Colors["DraftStatusTextError"],
				LW.T["UndoBufferConfigCompressionError"],
				c.Reset,
			))
		}
	}

	err := yaml.Unmarshal(b, &LW.Config)
	if err != nil {
		setDraftStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["DraftStatusTextError"],
			LW.T["UndoBufferPushValueConfigUnmarshalFailure"],
			c.Reset,
		))
	}
	// set the LW.SelectedDraft to the latest LW.UndoBuffer's config
	for i := range LW.Config.Drafts {
		if LW.Config.Drafts[i].ID == id {
			LW.SelectedDraft = &(LW.Config.Drafts[i])
			return
		}
	}

	LW.SelectedDraft = &(LW.Config.Drafts[0])
}

// moves 1 step backward in the LW.UndoBuffer
func undo() {
	undoBufferLen := len(LW.UndoBuffer)
	newUndoBufferPos := LW.UndoBufferPos - 1

	if newUndoBufferPos < 0 {
		// nothing to undo - at beginning of LW.UndoBuffer
		setDraftStatus(fmt.Sprintf(
			"%v%v [%v/%v]%v",
			LW.Colors["DraftStatusTextPassive"],
			LW.T["UndoBufferNothingToUndo"],
			LW.UndoBufferPos+1,
			undoBufferLen,
			c.Reset,
		))

		return
	}

	LW.UndoBufferPos = newUndoBufferPos

	pushUndoBufferChangeToConfig()

	setDraftStatus(fmt.Sprintf(
		"%v%v: [%v/%v]%v",
		LW.Colors["DraftStatusTextPassive"],
		LW.T["UndoBufferUndoAction"],
		LW.UndoBufferPos+1,
		undoBufferLen,
		c.Reset,
	))

	loadDraft(LW.SelectedDraft)
	LW.AssetsTable.Select(LW.SelectedDraft.SelectedRow, c.ColumnDescriptionIndex)
}

// moves 1 step forward in the LW.UndoBuffer
func redo() {
	undoBufferLen := len(LW.UndoBuffer)
	undoBufferLastPos := undoBufferLen - 1
	newUndoBufferPos := LW.UndoBufferPos + 1

	if newUndoBufferPos > undoBufferLastPos {
		// nothing to redo - at end of LW.UndoBuffer
		setDraftStatus(fmt.Sprintf(
			"%v%v [%v/%v]%v",
			LW.Colors["DraftStatusTextPassive"],
			LW.T["UndoBufferNothingToRedo"],
			LW.UndoBufferPos+1,
			undoBufferLen,
			c.Reset,
		))

		return
	}

	LW.UndoBufferPos = newUndoBufferPos

	pushUndoBufferChangeToConfig()

	setDraftStatus(fmt.Sprintf(
		"%v%v: [%v/%v]%v",
		LW.Colors["DraftStatusTextPassive"],
		LW.T["UndoBufferRedoAction"],
		LW.UndoBufferPos+1,
		undoBufferLen,
		c.Reset,
	))

	loadDraft(LW.SelectedDraft)
	LW.AssetsTable.Select(LW.SelectedDraft.SelectedRow, c.ColumnDescriptionIndex)
}

// Uses flate to compress bytes.
func compress(input []byte) ([]byte, error) {
	var b bytes.Buffer

	w, err := flate.NewWriter(&b, 9)
	if err != nil {
		return []byte{}, fmt.Errorf("%v: %w", LW.T["UndoBufferCompressionWriteError"], err)
	}

	_, err = w.Write(input)
	if err != nil {
		return []byte{}, fmt.Errorf("%v: %w", LW.T["UndoBufferCompressionWriteError"], err)
	}

	w.Close()

	return b.Bytes(), nil
}

// Uses flate to decompress bytes.
func decompress(input []byte) ([]byte, error) {
	var b bytes.Buffer

	b.Write(input)

	r := flate.NewReader(&b)
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return []byte{}, fmt.Errorf("%v: %w", LW.T["UndoBufferCompressionWriteError"], err)
	}

	return data, nil
}

// attempts to place the current config at LW.UndoBuffer[LW.UndoBufferPos+1] but
// only if there were actual changes.
//
// also updates the status text accordingly
func modified() {
	if LW.SelectedDraft == nil {
		return
	}

	LW.SelectedDraft.Modified = true
	cr, _ := LW.AssetsTable.GetSelection()
	LW.SelectedDraft.SelectedRow = cr

	// marshal to detect differences between this config and the latest
	// config in the undo buffer
	if len(LW.UndoBuffer) >= 1 {
		b, err := yaml.Marshal(LW.Config)
		if err != nil {
			setDraftStatus(fmt.Sprintf(
				"%v%v%v",
				LW.Colors["DraftStatusTextError"],
				LW.T["UndoBufferCannotMarshalConfigError"],
				c.Reset,
			))
		}

		var bo []byte

		if LW.Config.DisableGzipCompressionInUndoBuffer {
			bo = LW.UndoBuffer[LW.UndoBufferPos]
		} else {
			bo, err = decompress(LW.UndoBuffer[LW.UndoBufferPos])
			if err != nil {
				setDraftStatus(fmt.Sprintf(
					"%v%v%v",
					LW.Colors["DraftStatusTextError"],
					LW.T["UndoBufferConfigDecompressionError"],
					c.Reset,
				))
			}
		}

		sbo := string(bo)
		sb := string(b)

		if sbo == sb {
			// no difference between this config and previous one
			setDraftStatus(fmt.Sprintf(
				"%v%v [%v/%v]%v",
				LW.Colors["DraftStatusTextError"],
				LW.T["UndoBufferNoChange"],
				LW.UndoBufferPos+1,
				len(LW.UndoBuffer),
				c.Reset,
			))

			return
		}
	}

	// if the LW.UndoBufferPos is not at the end of the LW.UndoBuffer, then all
	// values after LW.UndoBufferPos need to be deleted
	if LW.UndoBufferPos != len(LW.UndoBuffer)-1 {
		LW.UndoBuffer = slices.Delete(LW.UndoBuffer, LW.UndoBufferPos, len(LW.UndoBuffer))
	}

	// now that we've ensured that we are actually at the end of the buffer,
	// proceed to insert this config into the LW.UndoBuffer
	b, err := yaml.Marshal(LW.Config)
	if err != nil {
		setDraftStatus(fmt.Sprintf(
			"%v%v%v",
			LW.Colors["DraftStatusTextError"],
			LW.T["UndoBufferCannotMarshalConfigError"],
			c.Reset,
		))
	}

	var bgz []byte

	if LW.Config.DisableGzipCompressionInUndoBuffer {
		bgz = b
	} else {
		// push compressed bytes into the undo buffer to save on RAM :)
		bgz, err = compress(b)
		if err != nil {
			setDraftStatus(fmt.Sprintf(
				"%v%v%v",
				LW.Colors["DraftStatusTextError"],
				LW.T["UndoBufferConfigCompressionError"],
				c.Reset,
			))
		}
	}

	LW.UndoBuffer = append(LW.UndoBuffer, bgz)

	// enforce the configured maximum by dropping the oldest entries
	if len(LW.UndoBuffer) > LW.Config.UndoBufferMaxLength {
		LW.UndoBuffer = slices.Delete(LW.UndoBuffer, 0, len(LW.UndoBuffer)-LW.Config.UndoBufferMaxLength)
	}

	LW.UndoBufferPos = len(LW.UndoBuffer) - 1

	totalUndoBufferSize := 0
	for i := range LW.UndoBuffer {
		totalUndoBufferSize += len(LW.UndoBuffer[i])
	}

	pushUndoBufferChangeToConfig()
	setDraftStatus(fmt.Sprintf(
		"%v%v*%v[%v/%v %vkB]%v",
		LW.Colors["DraftStatusTextModifiedMarker"],
		c.Reset,
		LW.Colors["DraftStatusTextPassive"],
		LW.UndoBufferPos+1,
		len(LW.UndoBuffer),
		float64(totalUndoBufferSize/1000),
		c.Reset,
	))
}
