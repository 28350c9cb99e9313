package quota

import (
	"context"
	"sync"
	"time"

	"portfolio/config"
)

// ExcerptQuotaLimiter 는 발췌문 제안용 LLM 호출에 대한 분당/일일 한도를 관리한다.
// API 인스턴스가 하나라는 전제를 두고 인메모리로 동작하며,
// 애플리케이션이 재시작되면 카운터가 초기화된다.
type ExcerptQuotaLimiter struct {
	mu  sync.Mutex
	now func() time.Time

	dailyLimit int
	usedToday  int
	dayKey     string

	interval time.Duration
	lastCall time.Time
}

// NewExcerptQuotaLimiterFromConfig 는 config.yaml 의 summary_quota 설정을 기반으로 limiter 를 생성한다.
// 설정 값이 0 이하인 경우에는 해당 방향의 제한을 두지 않는다.
func NewExcerptQuotaLimiterFromConfig(cfg config.AppConfig) *ExcerptQuotaLimiter {
	return NewExcerptQuotaLimiter(cfg.SummaryQuota.RequestsPerMinute, cfg.SummaryQuota.RequestsPerDay)
}

func NewExcerptQuotaLimiter(requestsPerMinute, requestsPerDay int) *ExcerptQuotaLimiter {
	if requestsPerDay < 0 {
		requestsPerDay = 0
	}
	if requestsPerMinute < 0 {
		requestsPerMinute = 0
	}

	var interval time.Duration
	if requestsPerMinute > 0 {
		interval = time.Minute / time.Duration(requestsPerMinute)
	}

	return &ExcerptQuotaLimiter{
		now:        time.Now,
		dailyLimit: requestsPerDay,
		interval:   interval,
	}
}

// WaitAndReserve 는 LLM 호출 전에 분당/일일 한도를 적용한다.
// - 일일 한도를 초과한 경우: (false, nil) 을 반환하고 호출자는 LLM 호출을 스킵해야 한다.
// - 컨텍스트 취소 시: (false, error) 를 반환한다.
func (l *ExcerptQuotaLimiter) WaitAndReserve(ctx context.Context) (bool, error) {
	for {
		l.mu.Lock()

		now := l.now().UTC()
		todayKey := now.Format("2006-01-02")
		if l.dayKey != todayKey {
			l.dayKey = todayKey
			l.usedToday = 0
		}

		if l.dailyLimit > 0 && l.usedToday >= l.dailyLimit {
			l.mu.Unlock()
			return false, nil
		}

		var delay time.Duration
		if l.interval > 0 && !l.lastCall.IsZero() {
			delay = l.lastCall.Add(l.interval).Sub(now)
		}

		if delay <= 0 {
			l.usedToday++
			l.lastCall = now
			l.mu.Unlock()
			return true, nil
		}

		// 락을 풀고 대기 후 상태를 재평가한다.
		l.mu.Unlock()
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}
