// Gói limiter xử lý rate limit của Riot API.
// Riot trả về header "X-App-Rate-Limit-Count" trên mọi response với định dạng
// "<count>:<window>,<count>:<window>" cho hai cửa sổ (1 giây và 2 phút).
// Limiter đọc header này và tạm dừng caller khi usage chạm ngưỡng cho phép.

package limiter

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/thep200/riot-crawler/pkg/log"
)

const RateLimitHeader = "X-App-Rate-Limit-Count"

// RateLimiter là một bộ giới hạn tốc độ phản ứng (reactive): nó không chặn
// request trước khi gửi mà chỉ ngủ sau khi thấy server báo usage quá cao.
type RateLimiter struct {
	Logger      log.Logger
	secondLimit int
	minuteLimit int
	sleep       func(time.Duration)
}

func NewRateLimiter(logger log.Logger, secondLimit, minuteLimit int) *RateLimiter {
	return &RateLimiter{
		Logger:      logger,
		secondLimit: secondLimit,
		minuteLimit: minuteLimit,
		sleep:       time.Sleep,
	}
}

// Observe phân tích header rate limit và tạm dừng caller nếu cần.
// Hai ngưỡng được kiểm tra độc lập: cùng một response có thể kích hoạt cả hai.
func (r *RateLimiter) Observe(ctx context.Context, header string) {
	secondCount, minuteCount, ok := parseCounts(header)
	if !ok {
		return
	}

	if secondCount >= r.secondLimit {
		r.Logger.Info(ctx, "Waiting 1 second because of rate limit (%d per sec)...", r.secondLimit)
		r.sleep(1 * time.Second)
	}

	if minuteCount >= r.minuteLimit {
		r.Logger.Info(ctx, "Waiting for 2 minutes because rate limit (%d per 2min)...", r.minuteLimit)
		r.sleep(120 * time.Second)
	}
}

// parseCounts tách hai count từ header, bỏ qua phần window.
func parseCounts(header string) (int, int, bool) {
	windows := strings.Split(header, ",")
	if len(windows) < 2 {
		return 0, 0, false
	}

	secondCount, err := strconv.Atoi(strings.Split(windows[0], ":")[0])
	if err != nil {
		return 0, 0, false
	}

	minuteCount, err := strconv.Atoi(strings.Split(windows[1], ":")[0])
	if err != nil {
		return 0, 0, false
	}

	return secondCount, minuteCount, true
}
