// Package notify уведомляет администраторов о новых pending заявках через внешний сервис
// уведомлений. Пуша нет: processor опрашивает БД по таймеру, поэтому заявка доходит до
// администратора не позже одного интервала опроса.
package notify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/transport/notify/client"

	"github.com/sirupsen/logrus"

	"time"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultPollInterval           = 30 * time.Second
	defaultLimitPerIteration uint = 100
	defaultNotifyWorkers     uint = 5
)

// Processor доставляет уведомления о pending заявках администраторам.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	pollInterval      time.Duration
	limitPerIteration uint
	notifyWorkers     uint
}

// New создает новый экземпляр процессора уведомлений.
func New(svs Servicer, notifierBaseURL string, l *logrus.Logger) *Processor {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "notify",
		"module":    "processor",
	})

	return &Processor{
		svs:               svs,
		client:            client.New(notifierBaseURL),
		l:                 loggerEntry,
		pollInterval:      defaultPollInterval,
		limitPerIteration: defaultLimitPerIteration,
		notifyWorkers:     defaultNotifyWorkers,
	}
}

// SetPollInterval устанавливает интервал опроса БД.
func (p *Processor) SetPollInterval(interval time.Duration) *Processor {
	if interval > 0 {
		p.pollInterval = interval
	}
	return p
}

// SetLimitPerIteration устанавливает кол-во заявок, обрабатываемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

// SetNotifyWorkers устанавливает кол-во воркеров, отправляющих уведомления.
func (p *Processor) SetNotifyWorkers(workers uint) *Processor {
	p.notifyWorkers = workers
	return p
}

// SetClient подменяет http клиент. Используется в тестах.
func (p *Processor) SetClient(c Client) *Processor {
	p.client = c
	return p
}

// Run запускает цикл опроса до отмены контекста. Таймер жестко привязан к контексту:
// остановка приложения останавливает и опрос.
//
// Алгоритм работы:
//  1. Каждый тик запрашивает через сервисный слой pending заявки без отметки об уведомлении.
//  2. Отправляет каждую заявку во внешний сервис уведомлений N воркерами.
//  3. Успешно доставленные заявки помечает через сервисный слой. Неудачные остаются
//     без отметки и будут переотправлены на следующем тике.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"pollInterval":      p.pollInterval.String(),
		"limitPerIteration": p.limitPerIteration,
		"notifyWorkers":     p.notifyWorkers,
	}).Info("Starting")

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
			if err := p.process(ctx); err != nil {
				if !errors.Is(err, ErrNoRequests) {
					p.l.WithError(err).Error("process error")
				}
			}
		}
	}
}

// process выполняет одну итерацию: выборка заявок, отправка уведомлений, отметка доставленных.
// Возвращает ErrNoRequests, если уведомлять не о чем.
func (p *Processor) process(ctx context.Context) error {
	requests, requestsErr := p.produce(ctx)
	if requestsErr != nil {
		return fmt.Errorf("process: %w", requestsErr)
	}

	results := p.runWorkers(ctx, requests)

	var notifiedIDs = make([]int64, 0, len(results))
	for _, result := range results {
		if result.Error == nil {
			notifiedIDs = append(notifiedIDs, result.Request.ID)
		}
	}
	if len(notifiedIDs) == 0 {
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if markErr := p.svs.MarkNotified(reqCtx, notifiedIDs); markErr != nil {
		return fmt.Errorf("process: %s", markErr.Error())
	}
	return nil
}

// workerResult результат доставки одного уведомления.
type workerResult struct {
	WorkerID uint
	Request  *domain.InvestmentRequest
	Error    error
}

// runWorkers запускает параллельных воркеров доставки и ожидает конца их работы.
// Паттерн fan-out/fan-in, как и в остальных фоновых обработчиках.
func (p *Processor) runWorkers(ctx context.Context, requests []domain.InvestmentRequest) []workerResult {
	var taskCh = make(chan *domain.InvestmentRequest, len(requests))

	for i := range requests {
		taskCh <- &requests[i]
	}
	close(taskCh)

	wg := new(sync.WaitGroup)
	wg.Add(int(p.notifyWorkers)) //nolint:gosec

	var resultCh = make(chan *workerResult, len(requests))

	for i := range p.notifyWorkers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()

	close(resultCh)

	var results = make([]workerResult, 0, len(requests))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":    result.WorkerID,
			"requestID": result.Request.ID,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("notify about request")
		} else {
			l.Info("Success")
		}
		results = append(results, *result)
	}
	return results
}

// worker доставляет уведомления из канала задач и отправляет результаты.
func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.InvestmentRequest,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask отправляет одно уведомление. При ответе 429 ждет указанное в заголовке
// время и повторяет попытку.
func (p *Processor) processWorkerTask(
	ctx context.Context,
	workerID uint,
	task *domain.InvestmentRequest,
) *workerResult {
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		err := p.client.NotifyNewRequest(reqCtx, task)
		cancel()

		if err != nil {
			result := workerResult{
				WorkerID: workerID,
				Request:  task,
			}
			var tooManyReq *client.TooManyRequestError
			if errors.As(err, &tooManyReq) {
				// Проверяем отмену контекста перед спячкой
				select {
				case <-ctx.Done():
					result.Error = ctx.Err()
					return &result
				case <-time.After(tooManyReq.RetryAfter):
					// После паузы делаем повторную попытку
					continue
				}
			}
			result.Error = err
			return &result
		}

		return &workerResult{
			WorkerID: workerID,
			Request:  task,
		}
	}
}

// produce получает список заявок для уведомления. Возвращает ErrNoRequests, если их нет.
func (p *Processor) produce(ctx context.Context) ([]domain.InvestmentRequest, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	requests, requestsErr := p.svs.RequestsForNotification(produceCtx, p.limitPerIteration)
	if requestsErr != nil {
		return nil, fmt.Errorf("produce: %w", requestsErr)
	}

	if len(requests) == 0 {
		return nil, ErrNoRequests
	}
	return requests, nil
}
