package jobs

import (
	"context"
	"log"
	"time"

	"oficina_prime/internal/usecase"
	"oficina_prime/internal/usecase/interfaces"

	rcron "github.com/robfig/cron/v3"
)

// CompletionSweep periodically re-runs the completion gate over every
// unfinished vehicle. The HTTP flows already poke the gate on each status
// change; the sweep catches vehicles stranded by a crash between the task
// flip and the vehicle flip.
type CompletionSweep struct {
	vehicles   interfaces.IVehicleRepository
	completion usecase.ICompletionUseCase
	schedule   string
	cron       *rcron.Cron
}

func NewCompletionSweep(vehicles interfaces.IVehicleRepository, completion usecase.ICompletionUseCase, schedule string) *CompletionSweep {
	if schedule == "" {
		schedule = "@every 5m"
	}
	return &CompletionSweep{vehicles: vehicles, completion: completion, schedule: schedule}
}

func (s *CompletionSweep) Start() error {
	s.cron = rcron.New()
	if _, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		s.Run(ctx)
	}); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[jobs][sweep] completion sweep started schedule=%q", s.schedule)
	return nil
}

func (s *CompletionSweep) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run executes one sweep pass. Errors on individual vehicles are logged and
// do not stop the pass.
func (s *CompletionSweep) Run(ctx context.Context) {
	vehicles, err := s.vehicles.ListUnfinished(ctx)
	if err != nil {
		log.Printf("[jobs][sweep] failed listing unfinished vehicles err=%v", err)
		return
	}

	var completed int
	for _, v := range vehicles {
		flipped, err := s.completion.Reevaluate(ctx, v.ID)
		if err != nil {
			log.Printf("[jobs][sweep] reevaluate failed vehicle_id=%s err=%v", v.ID, err)
			continue
		}
		if flipped {
			completed++
		}
	}
	log.Printf("[jobs][sweep] pass done checked=%d completed=%d", len(vehicles), completed)
}
