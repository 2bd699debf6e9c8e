package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"later-reminder/internal/scheduling"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func printPlan(plan scheduling.Plan, applied bool) {
	fmt.Printf("%s %s\n", bold("タイトル:"), plan.Title)
	fmt.Printf("%s %s\n", bold("休み日:"), plan.FreeDay)
	fmt.Printf("%s %s\n", bold("追加時刻:"), plan.DueDateTime)
	fmt.Printf("%s %d分\n", bold("想定所要時間:"), plan.EstimatedMinutes)
	fmt.Printf("%s %d分\n", bold("間隔設定:"), plan.GapMinutes)
	if plan.List != "" {
		fmt.Printf("%s %s\n", bold("リスト:"), plan.List)
	}

	for _, warning := range plan.Warnings {
		fmt.Println(yellow("警告: " + warning))
	}

	switch {
	case plan.Duplicate:
		fmt.Println(yellow("重複判定: 既存ありのため追加スキップ"))
	case plan.Committed:
		fmt.Println(green("結果: 追加成功"))
	case applied:
		fmt.Println(red("結果: 追加されませんでした"))
	default:
		fmt.Println(gray("dry-run: 追加は実行していません。--apply を付けると反映します。"))
	}
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, red("エラー: "+err.Error()))
}
