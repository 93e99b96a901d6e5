package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/internal/usecase/interfaces"
	mock_interfaces "fieldops_billing/internal/usecase/interfaces/mocks"
	"fieldops_billing/pkg/apperror"

	"go.uber.org/mock/gomock"
)

type portalFixture struct {
	tokens    *mock_interfaces.MockIPortalTokenRepository
	audit     *mock_interfaces.MockIAuditLogRepository
	estimates *mock_interfaces.MockIEstimateRepository
	uc        *PortalUseCase
}

// newPortalFixture wires the portal against a real estimate use case so
// step-4 business checks run for real; everything else is mocked.
func newPortalFixture(t *testing.T) (*gomock.Controller, *portalFixture) {
	ctrl := gomock.NewController(t)
	f := &portalFixture{
		tokens:    mock_interfaces.NewMockIPortalTokenRepository(ctrl),
		audit:     mock_interfaces.NewMockIAuditLogRepository(ctrl),
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
	}
	f.audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	snapshots := mock_interfaces.NewMockIEstimateSnapshotRepository(ctrl)
	snapshots.EXPECT().LatestVersion(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	snapshots.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	estUC := NewEstimateUseCase(f.estimates, snapshots, f.audit, nil, nil, nil, nil, fixedClock{testNow}, "")

	f.uc = NewPortalUseCase(f.tokens, f.audit, estUC, nil, nil, nil, fixedClock{testNow}, DefaultTokenTTLs())
	return ctrl, f
}

func validToken(purpose entities.TokenPurpose, raw string) entities.PortalToken {
	return entities.PortalToken{
		TokenHash:    hashToken(raw),
		CompanyID:    "co-1",
		DocumentType: entities.DocumentTypeEstimate,
		DocumentID:   "est-1",
		Purpose:      purpose,
		OneShot:      purpose.OneShotPurpose(),
		ExpiresAt:    testNow.Add(time.Hour),
		CreatedAt:    testNow.Add(-time.Hour),
	}
}

func assertInvalidLink(t *testing.T, err error) {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Kind != apperror.KindInvalidAccessToken {
		t.Fatalf("expected invalid-token kind, got %s", appErr.Kind)
	}
	// The response must be byte-identical across all failure causes.
	if appErr.Code != "INVALID_LINK" || appErr.Message != "This link is no longer valid" {
		t.Fatalf("response leaks failure detail: %+v", appErr)
	}
}

func TestPortalUseCase_Issue(t *testing.T) {
	ctrl, f := newPortalFixture(t)
	defer ctrl.Finish()

	var stored entities.PortalToken
	f.tokens.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tok entities.PortalToken) error {
			stored = tok
			return nil
		})

	raw, expiresAt, err := f.uc.Issue(context.Background(), "co-1", entities.DocumentTypeEstimate, "est-1", entities.TokenPurposeEstimateAct)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) != 64 {
		t.Fatalf("expected 32 random bytes hex-encoded, got %d chars", len(raw))
	}
	if stored.TokenHash == raw {
		t.Fatalf("raw token must never be stored")
	}
	if stored.TokenHash != hashToken(raw) {
		t.Fatalf("stored hash does not match the raw token")
	}
	if !stored.OneShot {
		t.Fatalf("estimate_act tokens are one shot")
	}
	if !expiresAt.Equal(testNow.Add(30 * 24 * time.Hour)) {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}
}

func TestPortalUseCase_UniformFailureResponse(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		ctrl, f := newPortalFixture(t)
		defer ctrl.Finish()
		f.tokens.EXPECT().GetByHash(gomock.Any(), gomock.Any()).Return(entities.PortalToken{}, nil)
		_, err := f.uc.ViewEstimate(context.Background(), "nosuchtoken", entities.Actor{})
		assertInvalidLink(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl, f := newPortalFixture(t)
		defer ctrl.Finish()
		tok := validToken(entities.TokenPurposeEstimateView, "raw-1")
		tok.ExpiresAt = testNow.Add(-time.Minute)
		f.tokens.EXPECT().GetByHash(gomock.Any(), tok.TokenHash).Return(tok, nil)
		_, err := f.uc.ViewEstimate(context.Background(), "raw-1", entities.Actor{})
		assertInvalidLink(t, err)
	})

	t.Run("purpose mismatch", func(t *testing.T) {
		ctrl, f := newPortalFixture(t)
		defer ctrl.Finish()
		tok := validToken(entities.TokenPurposeEstimateView, "raw-1")
		f.tokens.EXPECT().GetByHash(gomock.Any(), tok.TokenHash).Return(tok, nil)
		// A view token must not authorize the decision endpoint.
		_, err := f.uc.DecideEstimate(context.Background(), "raw-1", true, entities.Actor{})
		assertInvalidLink(t, err)
	})

	t.Run("already-used one-shot token", func(t *testing.T) {
		ctrl, f := newPortalFixture(t)
		defer ctrl.Finish()
		used := testNow.Add(-time.Minute)
		tok := validToken(entities.TokenPurposeEstimateAct, "raw-1")
		tok.UsedAt = &used
		f.tokens.EXPECT().GetByHash(gomock.Any(), tok.TokenHash).Return(tok, nil)
		_, err := f.uc.DecideEstimate(context.Background(), "raw-1", true, entities.Actor{})
		assertInvalidLink(t, err)
	})

	t.Run("document no longer decidable", func(t *testing.T) {
		ctrl, f := newPortalFixture(t)
		defer ctrl.Finish()
		tok := validToken(entities.TokenPurposeEstimateAct, "raw-1")
		f.tokens.EXPECT().GetByHash(gomock.Any(), tok.TokenHash).Return(tok, nil)
		f.estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusRejected}, nil)
		_, err := f.uc.DecideEstimate(context.Background(), "raw-1", true, entities.Actor{})
		assertInvalidLink(t, err)
	})
}

func TestPortalUseCase_DecideEstimate(t *testing.T) {
	t.Run("approve consumes the token then transitions", func(t *testing.T) {
		ctrl, f := newPortalFixture(t)
		defer ctrl.Finish()
		tok := validToken(entities.TokenPurposeEstimateAct, "raw-1")
		f.tokens.EXPECT().GetByHash(gomock.Any(), tok.TokenHash).Return(tok, nil)
		f.estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", CompanyID: "co-1", Status: entities.EstimateStatusSent}, nil).Times(2)
		gomock.InOrder(
			f.tokens.EXPECT().MarkUsed(gomock.Any(), tok.TokenHash, testNow).Return(nil),
			f.estimates.EXPECT().UpdateStatus(gomock.Any(), "co-1", "est-1", entities.EstimateStatusSent, entities.EstimateStatusApproved).
				Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusApproved}, nil),
		)

		got, err := f.uc.DecideEstimate(context.Background(), "raw-1", true, entities.Actor{Type: "customer", IPAddress: "203.0.113.9"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.EstimateStatusApproved {
			t.Fatalf("expected approved, got %s", got.Status)
		}
	})

	t.Run("losing the one-shot race looks like an invalid link", func(t *testing.T) {
		ctrl, f := newPortalFixture(t)
		defer ctrl.Finish()
		tok := validToken(entities.TokenPurposeEstimateAct, "raw-1")
		f.tokens.EXPECT().GetByHash(gomock.Any(), tok.TokenHash).Return(tok, nil)
		f.estimates.EXPECT().GetByID(gomock.Any(), "co-1", "est-1").
			Return(entities.Estimate{ID: "est-1", CompanyID: "co-1", Status: entities.EstimateStatusSent}, nil)
		f.tokens.EXPECT().MarkUsed(gomock.Any(), tok.TokenHash, testNow).Return(interfaces.ErrTokenUsed)

		_, err := f.uc.DecideEstimate(context.Background(), "raw-1", false, entities.Actor{Type: "customer"})
		assertInvalidLink(t, err)
	})
}

func TestPortalUseCase_ViewInvoice(t *testing.T) {
	t.Run("first view moves sent to viewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockIPortalTokenRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
		audit.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		invRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		invUC := NewInvoiceUseCase(invRepo, nil, audit, fixedClock{testNow})
		uc := NewPortalUseCase(tokens, audit, nil, invUC, nil, nil, fixedClock{testNow}, DefaultTokenTTLs())

		tok := entities.PortalToken{
			TokenHash: hashToken("raw-inv"), CompanyID: "co-1",
			DocumentType: entities.DocumentTypeInvoice, DocumentID: "inv-1",
			Purpose: entities.TokenPurposeInvoiceView, ExpiresAt: testNow.Add(time.Hour),
		}
		tokens.EXPECT().GetByHash(gomock.Any(), tok.TokenHash).Return(tok, nil)
		invRepo.EXPECT().GetByID(gomock.Any(), "co-1", "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent}, nil).Times(2)
		invRepo.EXPECT().UpdateStatus(gomock.Any(), "co-1", "inv-1", entities.InvoiceStatusSent, entities.InvoiceStatusViewed, "").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusViewed}, nil)

		got, err := uc.ViewInvoice(context.Background(), "raw-inv", entities.Actor{Type: "customer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.InvoiceStatusViewed {
			t.Fatalf("expected viewed, got %s", got.Status)
		}
	})
}

func TestPortalUseCase_UnknownTokenAuditAttribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokens := mock_interfaces.NewMockIPortalTokenRepository(ctrl)
	audit := mock_interfaces.NewMockIAuditLogRepository(ctrl)
	uc := NewPortalUseCase(tokens, audit, nil, nil, nil, nil, fixedClock{testNow}, DefaultTokenTTLs())

	tokens.EXPECT().GetByHash(gomock.Any(), hashToken("nosuchtoken")).Return(entities.PortalToken{}, nil)
	var captured entities.AuditLogEntry
	audit.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e entities.AuditLogEntry) error {
			captured = e
			return nil
		})

	_, err := uc.ViewEstimate(context.Background(), "nosuchtoken", entities.Actor{IPAddress: "10.0.0.9"})
	assertInvalidLink(t, err)
	if captured.CompanyID != "unattributed" {
		t.Fatalf("audit company = %q, want unattributed", captured.CompanyID)
	}
	if captured.EntityID != hashToken("nosuchtoken") {
		t.Fatalf("audit entity id must record the presented hash, got %q", captured.EntityID)
	}
	if !captured.Denied {
		t.Fatal("audit row must be marked denied")
	}
}
