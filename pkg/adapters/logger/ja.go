package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Session lifecycle (info)
		"Session started on device %d, one frame every %s": "デバイス %d でセッションを開始しました。フレーム間隔は %s です",
		"Session stopped":                 "セッションを停止しました",
		"Overlay enabled: %s (%dx%d)":     "オーバーレイを有効化: %s (%dx%d)",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Writing frames to %s, press Ctrl-C to stop": "フレームを %s に書き込み中。Ctrl-C で停止します",
		"Snapshot written to %s":          "スナップショットを %s に書き込みました",

		// Recoverable per-tick problems (warn)
		"Exception during the frame elaboration: %s": "フレーム処理中に例外が発生しました: %s",
		"Dropping frame: %s":                         "フレームを破棄します: %s",
		"Presentation sink rejected the update: %s":  "表示シンクが更新を拒否しました: %s",
		"Overlay %s could not be loaded, compositing stays disabled: %s": "オーバーレイ %s を読み込めませんでした。合成は無効のままです: %s",
		"Exception in stopping the frame capture, trying to release the camera now": "フレームキャプチャの停止で例外が発生しました。カメラを解放します",
		"Releasing the camera failed: %s": "カメラの解放に失敗しました: %s",

		// Stage internals (debug)
		"Compositing %dx%d overlay onto %dx%d frame":       "%dx%d のオーバーレイを %dx%d のフレームに合成します",
		"Converting %dx%d frame to grayscale":               "%dx%d のフレームをグレースケールに変換します",
		"Computed %d channel histograms for %dx%d frame":    "%d チャンネルのヒストグラムを %dx%d のフレームから計算しました",
		"Encoded %d PNG bytes":                              "%d バイトの PNG にエンコードしました",

		// Unrecoverable problems (error)
		"Impossible to open the camera connection":     "カメラに接続できません",
		"Impossible to open the camera connection: %s": "カメラに接続できません: %s",
	})
}
