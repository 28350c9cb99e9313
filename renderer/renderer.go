// Package renderer loads pages in headless Chrome so script-rendered articles
// can be imported.
package renderer

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

	defaultChromePath = "/usr/bin/chromium-browser" // Docker/Linux 기본
	defaultTimeout    = 30 * time.Second
)

// ChromePath 는 CHROME_PATH 환경 변수 또는 기본 경로를 반환한다.
func ChromePath() string {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	return defaultChromePath
}

func allocatorOptions(chromePath string) []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.UserAgent(USER_AGENT),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)
}

// RenderHTML 은 url 을 열어 스크립트 실행 후의 전체 HTML 을 반환한다.
// ctx 에 데드라인이 없으면 30초로 제한한다.
func RenderHTML(ctx context.Context, url string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocatorOptions(ChromePath())...)
	defer cancel()
	tabCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return "", err
	}
	return htmlContent, nil
}
