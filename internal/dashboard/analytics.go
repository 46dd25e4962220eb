package dashboard

import (
	"sort"
	"time"

	"pos-backend/internal/models"

	"gorm.io/gorm"
)

type SalesMetric struct {
	Total     float64 `json:"total"`
	Change    float64 `json:"change"`
	Timeframe string  `json:"timeframe"`
}

type OrdersMetric struct {
	Count     int64   `json:"count"`
	Change    float64 `json:"change"`
	Timeframe string  `json:"timeframe"`
}

type DailySales struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type HourlyBucket struct {
	Hour   string `json:"hour"`
	Orders int    `json:"orders"`
}

type CategoryPerformance struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

type TopItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// nonCancelled scopes a query on orders to everything except cancelled
// ones; cancelled orders never count towards analytics.
func nonCancelled(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Order{}).Where("order_status <> ?", models.OrderStatusCancelled)
}

func sumSalesWindow(db *gorm.DB, start, end time.Time, bounded bool) (float64, error) {
	q := nonCancelled(db)
	if bounded {
		q = q.Where("created_at >= ? AND created_at < ?", start, end)
	}
	var total float64
	err := q.Select("COALESCE(SUM(bill_total_with_tax), 0)").Scan(&total).Error
	return total, err
}

func countOrdersWindow(db *gorm.DB, start, end time.Time, bounded bool) (int64, error) {
	q := nonCancelled(db)
	if bounded {
		q = q.Where("created_at >= ? AND created_at < ?", start, end)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

// SalesAggregate sums the tax-inclusive total over the window and computes
// the change against the preceding window. all_time has no baseline and
// reports a change of 0.
func SalesAggregate(db *gorm.DB, tf Timeframe) (SalesMetric, error) {
	cur, err := sumSalesWindow(db, tf.Start, tf.End, tf.Bounded)
	if err != nil {
		return SalesMetric{}, err
	}
	metric := SalesMetric{Total: cur, Timeframe: tf.Token}
	if !tf.Bounded {
		return metric, nil
	}

	prev, err := sumSalesWindow(db, tf.PrevStart, tf.PrevEnd, true)
	if err != nil {
		return SalesMetric{}, err
	}
	metric.Change = PercentChange(prev, cur)
	return metric, nil
}

// OrdersAggregate applies the same windowing to an order count. Its
// timeframe is selectable independently of the sales metric.
func OrdersAggregate(db *gorm.DB, tf Timeframe) (OrdersMetric, error) {
	cur, err := countOrdersWindow(db, tf.Start, tf.End, tf.Bounded)
	if err != nil {
		return OrdersMetric{}, err
	}
	metric := OrdersMetric{Count: cur, Timeframe: tf.Token}
	if !tf.Bounded {
		return metric, nil
	}

	prev, err := countOrdersWindow(db, tf.PrevStart, tf.PrevEnd, true)
	if err != nil {
		return OrdersMetric{}, err
	}
	metric.Change = PercentChange(float64(prev), float64(cur))
	return metric, nil
}

// WeeklySalesSeries returns the trailing 7 calendar days in chronological
// order, one point per day, zero-filled for days without sales.
func WeeklySalesSeries(db *gorm.DB, now time.Time) ([]DailySales, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := midnight.AddDate(0, 0, -6)

	var rows []struct {
		CreatedAt        time.Time
		BillTotalWithTax float64
	}
	err := nonCancelled(db).
		Where("created_at >= ?", start).
		Select("created_at, bill_total_with_tax").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, 7)
	for _, r := range rows {
		totals[r.CreatedAt.In(now.Location()).Format("2006-01-02")] += r.BillTotalWithTax
	}

	series := make([]DailySales, 0, 7)
	for day := start; !day.After(midnight); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		series = append(series, DailySales{Date: key, Total: totals[key]})
	}
	return series, nil
}

// HourlyTraffic buckets today's orders by hour of day, labeled in 12-hour
// clock format. Empty hours are omitted.
func HourlyTraffic(db *gorm.DB, now time.Time) ([]HourlyBucket, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var rows []struct {
		CreatedAt time.Time
	}
	err := nonCancelled(db).
		Where("created_at >= ?", midnight).
		Select("created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int)
	for _, r := range rows {
		counts[r.CreatedAt.In(now.Location()).Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	buckets := make([]HourlyBucket, 0, len(hours))
	for _, h := range hours {
		buckets = append(buckets, HourlyBucket{Hour: HourLabel(h), Orders: counts[h]})
	}
	return buckets, nil
}

// CategoryPerformanceStats flattens line items of non-cancelled orders and
// groups quantities by the category snapshot.
func CategoryPerformanceStats(db *gorm.DB) ([]CategoryPerformance, error) {
	var rows []CategoryPerformance
	err := db.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.order_status <> ?", models.OrderStatusCancelled).
		Select("order_items.category AS category, SUM(order_items.quantity) AS quantity").
		Group("order_items.category").
		Order("quantity DESC").
		Scan(&rows).Error
	return rows, err
}

// TopSellingItems groups line items by name, sorted by quantity sold,
// limited to the top 5. Revenue is price times quantity at order time.
func TopSellingItems(db *gorm.DB) ([]TopItem, error) {
	var rows []TopItem
	err := db.Table("order_items").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.order_status <> ?", models.OrderStatusCancelled).
		Select("order_items.name AS name, SUM(order_items.quantity) AS quantity, SUM(order_items.price * order_items.quantity) AS revenue").
		Group("order_items.name").
		Order("quantity DESC").
		Limit(5).
		Scan(&rows).Error
	return rows, err
}

// PaymentBreakdown sums tax-inclusive totals per stored payment method
// label, then folds the labels into the four fixed buckets.
func PaymentBreakdown(db *gorm.DB) (PaymentBuckets, error) {
	var rows []struct {
		PaymentMethod string
		Total         float64
	}
	err := nonCancelled(db).
		Select("payment_method, SUM(bill_total_with_tax) AS total").
		Group("payment_method").
		Scan(&rows).Error
	if err != nil {
		return PaymentBuckets{}, err
	}

	var buckets PaymentBuckets
	for _, r := range rows {
		buckets.Add(r.PaymentMethod, r.Total)
	}
	return buckets, nil
}

// UnavailableDishes lists up to 5 dishes currently flagged unavailable,
// for restocking visibility.
func UnavailableDishes(db *gorm.DB) ([]models.Dish, error) {
	var dishes []models.Dish
	err := db.Where("available = ?", false).Limit(5).Find(&dishes).Error
	return dishes, err
}
