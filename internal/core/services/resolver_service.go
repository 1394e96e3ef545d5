package services

import (
	"context"
	"errors"

	"github.com/nusankara/erp_backoffice/internal/apperrors"
	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portsrepo "github.com/nusankara/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
)

// postingContextResolver derives branch/department/project tags from the
// source document of a posting event. The poster applies the resolved
// context to every line that does not carry its own tag.
type postingContextResolver struct {
	assetRepo portsrepo.AssetReader
}

// NewPostingContextResolver creates a resolver over the given repositories.
func NewPostingContextResolver(assetRepo portsrepo.AssetReader) portssvc.PostingContextResolverSvc {
	return &postingContextResolver{assetRepo: assetRepo}
}

var _ portssvc.PostingContextResolverSvc = (*postingContextResolver)(nil)

// Resolve returns the context for the source document. Sources without
// branch affinity resolve to an empty context; a source document that has
// gone missing does too, rather than failing the posting.
func (r *postingContextResolver) Resolve(ctx context.Context, sourceType domain.SourceType, sourceID string) (domain.PostingContext, error) {
	switch sourceType {
	case domain.SourceAsset:
		asset, err := r.assetRepo.FindAssetByID(ctx, sourceID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return domain.PostingContext{}, nil
			}
			return domain.PostingContext{}, err
		}
		branch := asset.BranchID
		return domain.PostingContext{BranchID: &branch}, nil
	default:
		return domain.PostingContext{}, nil
	}
}
