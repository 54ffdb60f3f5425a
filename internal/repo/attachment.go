package repo

import (
	"context"
	"fmt"

	"github.com/gigcampus/order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var attachmentColumns = []string{
	"attachment_id", "order_id", "file_name", "file_url", "file_size",
	"file_type", "description", "is_public", "created_at",
}

func (r *postgresRepo) SaveAttachments(ctx context.Context, attachments []entities.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}

	q := r.qb.Insert("order_attachments").Columns(attachmentColumns...)
	for _, a := range attachments {
		q = q.Values(
			a.AttachmentID, a.OrderID, a.FileName, a.FileURL, a.FileSize,
			nullString(a.FileType), nullString(a.Description), a.IsPublic, a.CreatedAt,
		)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save attachments: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListAttachments(ctx context.Context, orderID string) ([]entities.Attachment, error) {
	query, args := r.qb.Select(attachmentColumns...).
		From("order_attachments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at ASC").
		MustSql()

	var rows []Attachment
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select attachments: %w", err)
	}

	result := make([]entities.Attachment, 0, len(rows))
	for _, a := range rows {
		result = append(result, AttachmentToEntity(a))
	}
	return result, nil
}
