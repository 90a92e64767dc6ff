// Package i18n provides the UI string catalog. Locales are selected by
// the "language" config key; anything unrecognized falls back to English,
// and so does any individual string missing from a catalog.
package i18n

import "strings"

// T returns the translation of key in the active locale.
func T(key string) string {
	if s, ok := active[key]; ok {
		return s
	}
	if s, ok := catalogs["en"][key]; ok {
		return s
	}
	return key
}

// SetLocale activates a locale by code ("en", "ja", "zh-CN"). Region
// subtags fall back to the bare language when the exact code is unknown.
func SetLocale(code string) {
	if c, ok := catalogs[code]; ok {
		active = c
		return
	}
	if base, _, found := strings.Cut(code, "-"); found {
		if c, ok := catalogs[base]; ok {
			active = c
			return
		}
	}
	active = catalogs["en"]
}

// Locales returns the supported locale codes.
func Locales() []string { return []string{"en", "ja", "zh-CN"} }

var active = catalogs["en"]

var catalogs = map[string]map[string]string{
	"en": {
		"tab.status":            "Status",
		"tab.history":           "History",
		"tab.branches":          "Branches",
		"tab.tags":              "Tags",
		"tab.remotes":           "Remotes",
		"status.clean":          "working tree clean",
		"status.staged":         "Staged",
		"status.changes":        "Changes",
		"status.untracked":      "Untracked",
		"status.conflicts":      "Conflicts",
		"status.select":         "Select a file to preview its diff",
		"diff.title":            "Diff",
		"status.nodiff":         "(no diff: file is untracked or binary)",
		"status.stagedcount":    "%d file(s) staged",
		"commit.prompt":         "Commit message...",
		"commit.empty":          "commit message cannot be empty",
		"commit.title":          "Commit",
		"branch.new":            "New branch name",
		"branch.rename":         "Rename %s",
		"tag.new":               "New tag name",
		"tag.annotation":        "Annotation for %s (blank = lightweight)",
		"tag.annotated":         "annotated",
		"remote.add":            "Add remote (name url)",
		"remote.format":         "expected: <name> <url>",
		"confirm.discard":       "Discard changes to %s?",
		"confirm.delete.branch": "Delete branch %s?",
		"confirm.delete.tag":    "Delete tag %s?",
		"confirm.delete.remote": "Remove remote %s?",
		"confirm.merge":         "Merge %s into the current branch?",
		"op.fetched":            "Fetched from %s",
		"op.fetchedall":         "Fetched all remotes",
		"op.pulled":             "Pulled %s from %s",
		"op.pushed":             "Pushed %s to %s",
		"op.committed":          "Changes committed",
		"op.branch.created":     "Created branch %s",
		"op.merged":             "Merged %s",
		"op.tag.created":        "Created tag %s",
		"op.copied":             "Copied: %s",
		"dialog.yes":            "Yes",
		"dialog.no":             "No",
		"working":               "Working...",
		"bar.merging":           "MERGING",
		"bar.clean":             "clean",
		"bar.modified":          "modified",
		"empty.branches":        "No branches found",
		"empty.tags":            "No tags. Press n to create one",
		"empty.remotes":         "No remotes. Press a to add one",
		"empty.commits":         "No commits yet",
		"history.commits":       "Commits",
		"history.hash":          "Hash:",
		"history.author":        "Author:",
		"history.date":          "Date:",
		"history.parents":       "Parents:",
		"hint.branches":         "  enter switch  n new  R rename  D delete  m merge",
		"hint.tags":             "  n new tag  D delete",
		"hint.remotes":          "  a add  D remove  f fetch  F fetch all  p pull  P push",
		"hint.history":          "  enter detail  y copy hash  esc close",
		"hint.stage":            "stage",
		"hint.unstage":          "unstage",
		"hint.discard":          "discard",
		"hint.commit":           "commit",
		"hint.diff":             "diff",
		"hint.cancel":           "cancel",
		"help.title":            "Keyboard Shortcuts",
		"help.nav":              "Navigation",
		"help.tabs":             "Tabs",
		"help.general":          "General",
		"help.down":             "Move down",
		"help.up":               "Move up",
		"help.top":              "Go to top",
		"help.bottom":           "Go to bottom",
		"help.confirm":          "Confirm / open",
		"help.back":             "Back / cancel",
		"help.nexttab":          "Next tab",
		"help.prevtab":          "Previous tab",
		"help.refresh":          "Refresh",
		"help.toggle":           "Toggle this help",
		"help.quit":             "Quit",
		"help.stage":            "Stage file / all",
		"help.unstage":          "Unstage file / all",
		"help.discard":          "Discard changes",
		"help.commit":           "Commit staged files",
		"help.diffpane":         "Focus diff pane",
		"help.navcommits":       "Navigate commits",
		"help.detail":           "Show commit detail",
		"help.copyhash":         "Copy commit hash",
		"help.closedetail":      "Close detail",
		"help.switch":           "Switch to branch",
		"help.newbranch":        "New branch",
		"help.renamebranch":     "Rename branch",
		"help.deletebranch":     "Delete branch",
		"help.merge":            "Merge into current",
		"help.newtag":           "New tag",
		"help.deletetag":        "Delete tag",
		"help.addremote":        "Add remote",
		"help.removeremote":     "Remove remote",
		"help.fetch":            "Fetch / fetch all",
		"help.pull":             "Pull current branch",
		"help.push":             "Push current branch",
	},
	"ja": {
		"tab.status":            "ステータス",
		"tab.history":           "履歴",
		"tab.branches":          "ブランチ",
		"tab.tags":              "タグ",
		"tab.remotes":           "リモート",
		"status.clean":          "作業ツリーはクリーンです",
		"status.staged":         "ステージ済み",
		"status.changes":        "変更",
		"status.untracked":      "未追跡",
		"status.conflicts":      "競合",
		"status.select":         "ファイルを選ぶと差分を表示します",
		"diff.title":            "差分",
		"status.nodiff":         "（差分なし: 未追跡またはバイナリ）",
		"status.stagedcount":    "%d 個のファイルがステージ済み",
		"commit.prompt":         "コミットメッセージ...",
		"commit.empty":          "コミットメッセージを入力してください",
		"commit.title":          "コミット",
		"branch.new":            "新しいブランチ名",
		"branch.rename":         "%s の名前を変更",
		"tag.new":               "新しいタグ名",
		"tag.annotation":        "%s の注釈 (空欄で軽量タグ)",
		"tag.annotated":         "注釈付き",
		"remote.add":            "リモートを追加 (名前 URL)",
		"remote.format":         "入力形式: <名前> <URL>",
		"confirm.discard":       "%s への変更を破棄しますか？",
		"confirm.delete.branch": "ブランチ %s を削除しますか？",
		"confirm.delete.tag":    "タグ %s を削除しますか？",
		"confirm.delete.remote": "リモート %s を削除しますか？",
		"confirm.merge":         "%s を現在のブランチへマージしますか？",
		"op.fetched":            "%s からフェッチしました",
		"op.fetchedall":         "全てのリモートからフェッチしました",
		"op.pulled":             "%s を %s からプルしました",
		"op.pushed":             "%s を %s へプッシュしました",
		"op.committed":          "コミットしました",
		"op.branch.created":     "ブランチ %s を作成しました",
		"op.merged":             "%s をマージしました",
		"op.tag.created":        "タグ %s を作成しました",
		"op.copied":             "コピーしました: %s",
		"dialog.yes":            "はい",
		"dialog.no":             "いいえ",
		"working":               "処理中...",
		"bar.merging":           "マージ中",
		"bar.clean":             "クリーン",
		"bar.modified":          "変更あり",
		"empty.branches":        "ブランチがありません",
		"empty.tags":            "タグはありません。n で作成",
		"empty.remotes":         "リモートはありません。a で追加",
		"empty.commits":         "コミットはまだありません",
		"history.commits":       "コミット",
		"history.hash":          "ハッシュ:",
		"history.author":        "作者:",
		"history.date":          "日時:",
		"history.parents":       "親:",
		"hint.branches":         "  enter 切替  n 新規  R 名前変更  D 削除  m マージ",
		"hint.tags":             "  n 新規タグ  D 削除",
		"hint.remotes":          "  a 追加  D 削除  f フェッチ  F 全てフェッチ  p プル  P プッシュ",
		"hint.history":          "  enter 詳細  y ハッシュをコピー  esc 閉じる",
		"hint.stage":            "ステージ",
		"hint.unstage":          "ステージ解除",
		"hint.discard":          "破棄",
		"hint.commit":           "コミット",
		"hint.diff":             "差分",
		"hint.cancel":           "キャンセル",
		"help.title":            "キーボードショートカット",
		"help.nav":              "ナビゲーション",
		"help.tabs":             "タブ",
		"help.general":          "全般",
		"help.down":             "下へ移動",
		"help.up":               "上へ移動",
		"help.top":              "先頭へ移動",
		"help.bottom":           "末尾へ移動",
		"help.confirm":          "決定 / 開く",
		"help.back":             "戻る / キャンセル",
		"help.nexttab":          "次のタブ",
		"help.prevtab":          "前のタブ",
		"help.refresh":          "再読み込み",
		"help.toggle":           "このヘルプの表示切替",
		"help.quit":             "終了",
		"help.stage":            "ファイルをステージ / 全て",
		"help.unstage":          "ステージ解除 / 全て",
		"help.discard":          "変更を破棄",
		"help.commit":           "ステージ済みをコミット",
		"help.diffpane":         "差分ペインへ移動",
		"help.navcommits":       "コミットを移動",
		"help.detail":           "コミット詳細を表示",
		"help.copyhash":         "ハッシュをコピー",
		"help.closedetail":      "詳細を閉じる",
		"help.switch":           "ブランチを切り替え",
		"help.newbranch":        "新しいブランチ",
		"help.renamebranch":     "ブランチ名を変更",
		"help.deletebranch":     "ブランチを削除",
		"help.merge":            "現在のブランチへマージ",
		"help.newtag":           "新しいタグ",
		"help.deletetag":        "タグを削除",
		"help.addremote":        "リモートを追加",
		"help.removeremote":     "リモートを削除",
		"help.fetch":            "フェッチ / 全てフェッチ",
		"help.pull":             "現在のブランチをプル",
		"help.push":             "現在のブランチをプッシュ",
	},
	"zh-CN": {
		"tab.status":            "状态",
		"tab.history":           "历史",
		"tab.branches":          "分支",
		"tab.tags":              "标签",
		"tab.remotes":           "远程",
		"status.clean":          "工作区是干净的",
		"status.staged":         "已暂存",
		"status.changes":        "变更",
		"status.untracked":      "未跟踪",
		"status.conflicts":      "冲突",
		"status.select":         "选择文件以预览差异",
		"diff.title":            "差异",
		"status.nodiff":         "（无差异: 文件未跟踪或为二进制）",
		"status.stagedcount":    "已暂存 %d 个文件",
		"commit.prompt":         "提交信息...",
		"commit.empty":          "提交信息不能为空",
		"commit.title":          "提交",
		"branch.new":            "新分支名称",
		"branch.rename":         "重命名 %s",
		"tag.new":               "新标签名称",
		"tag.annotation":        "%s 的注释 (留空则为轻量标签)",
		"tag.annotated":         "附注",
		"remote.add":            "添加远程 (名称 URL)",
		"remote.format":         "格式: <名称> <URL>",
		"confirm.discard":       "放弃对 %s 的修改？",
		"confirm.delete.branch": "删除分支 %s？",
		"confirm.delete.tag":    "删除标签 %s？",
		"confirm.delete.remote": "移除远程 %s？",
		"confirm.merge":         "将 %s 合并到当前分支？",
		"op.fetched":            "已从 %s 获取",
		"op.fetchedall":         "已从所有远程获取",
		"op.pulled":             "已拉取 %s（来自 %s）",
		"op.pushed":             "已推送 %s 到 %s",
		"op.committed":          "已提交",
		"op.branch.created":     "已创建分支 %s",
		"op.merged":             "已合并 %s",
		"op.tag.created":        "已创建标签 %s",
		"op.copied":             "已复制: %s",
		"dialog.yes":            "是",
		"dialog.no":             "否",
		"working":               "处理中...",
		"bar.merging":           "合并中",
		"bar.clean":             "干净",
		"bar.modified":          "有修改",
		"empty.branches":        "没有分支",
		"empty.tags":            "没有标签。按 n 创建",
		"empty.remotes":         "没有远程。按 a 添加",
		"empty.commits":         "还没有提交",
		"history.commits":       "提交",
		"history.hash":          "哈希:",
		"history.author":        "作者:",
		"history.date":          "日期:",
		"history.parents":       "父提交:",
		"hint.branches":         "  enter 切换  n 新建  R 重命名  D 删除  m 合并",
		"hint.tags":             "  n 新建标签  D 删除",
		"hint.remotes":          "  a 添加  D 移除  f 获取  F 全部获取  p 拉取  P 推送",
		"hint.history":          "  enter 详情  y 复制哈希  esc 关闭",
		"hint.stage":            "暂存",
		"hint.unstage":          "取消暂存",
		"hint.discard":          "放弃",
		"hint.commit":           "提交",
		"hint.diff":             "差异",
		"hint.cancel":           "取消",
		"help.title":            "键盘快捷键",
		"help.nav":              "导航",
		"help.tabs":             "标签页",
		"help.general":          "通用",
		"help.down":             "向下移动",
		"help.up":               "向上移动",
		"help.top":              "跳到顶部",
		"help.bottom":           "跳到底部",
		"help.confirm":          "确认 / 打开",
		"help.back":             "返回 / 取消",
		"help.nexttab":          "下一个标签页",
		"help.prevtab":          "上一个标签页",
		"help.refresh":          "刷新",
		"help.toggle":           "显示/隐藏帮助",
		"help.quit":             "退出",
		"help.stage":            "暂存文件 / 全部",
		"help.unstage":          "取消暂存 / 全部",
		"help.discard":          "放弃修改",
		"help.commit":           "提交已暂存文件",
		"help.diffpane":         "切换到差异面板",
		"help.navcommits":       "浏览提交",
		"help.detail":           "查看提交详情",
		"help.copyhash":         "复制提交哈希",
		"help.closedetail":      "关闭详情",
		"help.switch":           "切换分支",
		"help.newbranch":        "新建分支",
		"help.renamebranch":     "重命名分支",
		"help.deletebranch":     "删除分支",
		"help.merge":            "合并到当前分支",
		"help.newtag":           "新建标签",
		"help.deletetag":        "删除标签",
		"help.addremote":        "添加远程",
		"help.removeremote":     "移除远程",
		"help.fetch":            "获取 / 全部获取",
		"help.pull":             "拉取当前分支",
		"help.push":             "推送当前分支",
	},
}
