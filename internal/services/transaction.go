package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/facades"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
	"github.com/segmentio/kafka-go"
)

// Error variables
var (
	ErrAccountNotConnected = errors.New("payment processor account is not connected")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNonTerminalStatus   = errors.New("transition target must be a terminal status")
)

// sessionSweepLimit is how many recent checkout sessions a sweep inspects per
// transaction. Only "does any recent session show paid" matters.
const sessionSweepLimit = 5

// TransactionWriter defines write operations on the transaction store.
type TransactionWriter interface {
	Save(ctx context.Context, txn *models.TransactionDB) error
	UpdateStatusIfPending(ctx context.Context, transactionID uuid.UUID, status string, entry models.HistoryEntry) (*models.TransactionDB, error)
}

// TransactionReader defines read operations on the transaction store.
type TransactionReader interface {
	GetByPaymentLinkID(ctx context.Context, paymentLinkID string) (*models.TransactionDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
	ListPendingByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
	GetMetricsByUserID(ctx context.Context, userID uuid.UUID) (*models.TransactionMetrics, error)
}

// UserGetter reads a user by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProcessorGateway defines the payment processor operations the engine consumes.
type ProcessorGateway interface {
	CreatePaymentLink(ctx context.Context, accountID string, amount float64, currency, description, successURL string) (linkID, paymentURL string, err error)
	ListRecentSessions(ctx context.Context, accountID, paymentLinkID string, limit int) ([]facades.CheckoutSession, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService creates payment links and is the single authority for
// transitioning a transaction's status. Both the webhook path and the lazy
// sweep funnel through applyTerminalStatus.
type TransactionService struct {
	writeRepo   TransactionWriter
	readRepo    TransactionReader
	users       UserGetter
	gateway     ProcessorGateway
	kafkaWriter KafkaWriter
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	writeRepo TransactionWriter,
	readRepo TransactionReader,
	users UserGetter,
	gateway ProcessorGateway,
	kafkaWriter KafkaWriter,
) *TransactionService {
	return &TransactionService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		users:       users,
		gateway:     gateway,
		kafkaWriter: kafkaWriter,
	}
}

// CreatePaymentLink mints a payment link at the processor and records the
// transaction as PENDING with an initial history entry. successURL is where
// the processor sends the payer's browser after a completed checkout.
func (s *TransactionService) CreatePaymentLink(ctx context.Context, userID uuid.UUID, amount float64, currency, description, successURL string) (*models.TransactionDB, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil || user.ProcessorAccountID == nil {
		return nil, ErrAccountNotConnected
	}

	linkID, paymentURL, err := s.gateway.CreatePaymentLink(ctx, *user.ProcessorAccountID, amount, currency, description, successURL)
	if err != nil {
		logger.Log.Errorw("failed to create payment link", "userID", userID, "amount", amount, "currency", currency, "error", err)
		return nil, err
	}

	now := time.Now()
	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		PaymentLinkID: linkID,
		Amount:        amount,
		Currency:      currency,
		Description:   description,
		PaymentURL:    paymentURL,
		Status:        models.StatusPending,
		History:       models.History{{Status: models.StatusPending, ChangedAt: now}},
		CreatedAt:     now,
	}

	if err := s.writeRepo.Save(ctx, txn); err != nil {
		logger.Log.Errorw("failed to save transaction", "transaction_id", txn.TransactionID, "error", err)
		return nil, err
	}

	return txn, nil
}

// applyTerminalStatus is the shared transition primitive. newStatus must be
// terminal. It reports whether the transition was applied; an already-terminal
// transaction or a lost race is a no-op, never an error. On success txn is
// refreshed from the store.
func (s *TransactionService) applyTerminalStatus(ctx context.Context, txn *models.TransactionDB, newStatus string) (applied bool, err error) {
	if !models.IsTerminalStatus(newStatus) {
		return false, ErrNonTerminalStatus
	}
	if models.IsTerminalStatus(txn.Status) {
		logger.Log.Infow("transition skipped, status already terminal",
			"transaction_id", txn.TransactionID, "status", txn.Status, "new_status", newStatus)
		return false, nil
	}

	entry := models.HistoryEntry{Status: newStatus, ChangedAt: time.Now()}
	updated, err := s.writeRepo.UpdateStatusIfPending(ctx, txn.TransactionID, newStatus, entry)
	if err != nil {
		logger.Log.Errorw("failed to update transaction status",
			"transaction_id", txn.TransactionID, "new_status", newStatus, "error", err)
		return false, err
	}
	if updated == nil {
		// A concurrent caller won the race; this attempt becomes a no-op.
		logger.Log.Infow("transition lost race, already updated",
			"transaction_id", txn.TransactionID, "new_status", newStatus)
		return false, nil
	}

	*txn = *updated
	s.publishTransition(ctx, updated)
	return true, nil
}

// HandleCheckoutCompleted is the webhook-driven path: it resolves the
// correlation key to a transaction and marks it PAID.
func (s *TransactionService) HandleCheckoutCompleted(ctx context.Context, paymentLinkID string) error {
	txn, err := s.readRepo.GetByPaymentLinkID(ctx, paymentLinkID)
	if err != nil {
		logger.Log.Errorw("failed to look up transaction by payment link", "payment_link_id", paymentLinkID, "error", err)
		return err
	}
	if txn == nil {
		return ErrTransactionNotFound
	}

	_, err = s.applyTerminalStatus(ctx, txn, models.StatusPaid)
	return err
}

// SyncPending is the lazy-sync sweep: for every PENDING transaction of the
// user it polls the processor for recent sessions and marks the transaction
// PAID when any session reports payment. A failure on one transaction never
// aborts the sweep.
func (s *TransactionService) SyncPending(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user for sweep", "userID", userID, "error", err)
		return err
	}
	if user == nil || user.ProcessorAccountID == nil {
		// Nothing to sweep without a connected account.
		return nil
	}

	pending, err := s.readRepo.ListPendingByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list pending transactions", "userID", userID, "error", err)
		return err
	}

	for i := range pending {
		txn := &pending[i]

		sessions, err := s.gateway.ListRecentSessions(ctx, *user.ProcessorAccountID, txn.PaymentLinkID, sessionSweepLimit)
		if err != nil {
			logger.Log.Errorw("sweep: failed to list sessions, skipping transaction",
				"transaction_id", txn.TransactionID, "payment_link_id", txn.PaymentLinkID, "error", err)
			continue
		}

		paid := false
		for _, session := range sessions {
			if session.PaymentStatus == facades.PaymentStatusPaid {
				paid = true
				break
			}
		}
		if !paid {
			continue
		}

		if _, err := s.applyTerminalStatus(ctx, txn, models.StatusPaid); err != nil {
			logger.Log.Errorw("sweep: failed to apply status, skipping transaction",
				"transaction_id", txn.TransactionID, "error", err)
		}
	}

	return nil
}

// List sweeps the user's pending transactions and returns the full list,
// newest first.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	if err := s.SyncPending(ctx, userID); err != nil {
		return nil, err
	}
	return s.readRepo.ListByUserID(ctx, userID)
}

// Metrics sweeps the user's pending transactions and returns aggregate totals.
func (s *TransactionService) Metrics(ctx context.Context, userID uuid.UUID) (*models.TransactionMetrics, error) {
	if err := s.SyncPending(ctx, userID); err != nil {
		return nil, err
	}
	return s.readRepo.GetMetricsByUserID(ctx, userID)
}

// publishTransition publishes a terminal transition to Kafka.
func (s *TransactionService) publishTransition(ctx context.Context, txn *models.TransactionDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.TransitionEvent{
		TransactionID: txn.TransactionID.String(),
		UserID:        txn.UserID.String(),
		PaymentLinkID: txn.PaymentLinkID,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Status:        txn.Status,
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transition event for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transition event to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transition event published to Kafka", "transaction_id", txn.TransactionID, "status", txn.Status)
	}
}
