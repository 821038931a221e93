package intake

import (
	"fmt"

	"mp3-transcriber/internal/app/model"
)

// Message languages.
const (
	MessagesEnglish  = "en"
	MessagesJapanese = "ja"
)

var catalog = map[string]map[model.WarningKind]string{
	MessagesEnglish: {
		model.WarningTooLarge:             "File is too large (%sMB > %dMB): %s",
		model.WarningUnsupportedExtension: "Unsupported file extension: %s",
		model.WarningContentType:          "Note: this file's MIME type is %s. Processing continues.",
		model.WarningUnreadable:           "Failed to read the file. Please check that it is not corrupted: %s",
		model.WarningTranscriptionFailed:  "Transcription failed. Please check the audio format and file state: %s",
	},
	MessagesJapanese: {
		model.WarningTooLarge:             "ファイルが大きすぎます（%sMB > %dMB）: %s",
		model.WarningUnsupportedExtension: "未対応の拡張子です: %s",
		model.WarningContentType:          "参考情報: このファイルのMIMEタイプは %s です。再生に問題がなければ続行します。",
		model.WarningUnreadable:           "ファイル読み込みに失敗しました。破損していないかご確認ください: %s",
		model.WarningTranscriptionFailed:  "書き起こしに失敗しました。音声形式やファイル状態をご確認ください: %s",
	},
}

// Warn builds a user-facing warning in the validator's message language.
// args fill the message template for kind.
func (v *Validator) Warn(kind model.WarningKind, fileName string, args ...interface{}) model.Warning {
	templates, ok := catalog[v.policy.Language]
	if !ok {
		templates = catalog[MessagesEnglish]
	}
	return model.Warning{
		FileName: fileName,
		Kind:     kind,
		Message:  fmt.Sprintf(templates[kind], args...),
		Advisory: kind == model.WarningContentType,
	}
}
