package cronjobs

import (
	"log"

	"github.com/robfig/cron/v3"

	"go-tripsentry/analytics"
)

// InitCronJobs wires the hourly analytics alert sweep. The sweep only
// reads; it never mutates shared state.
func InitCronJobs(events *analytics.Log) *cron.Cron {
	log.Println("Starting cron jobs")
	c := cron.New()

	_, err := c.AddFunc("0 * * * *", func() {
		log.Println("CronJob: analytics alert sweep running")
		events.SweepAlerts()
	})
	if err != nil {
		log.Println("Error scheduling analytics sweep:", err)
	}

	c.Start()
	return c
}
