package service

import (
	"context"

	"github.com/latenitesite/mattermost-mobile/internal/logger"
	"github.com/latenitesite/mattermost-mobile/models"
)

func (o *dataOperator) HandleIsolatedEntity(ctx context.Context, args IsolatedEntityArgs) error {
	td, err := lookupTable(args.TableName)
	if err != nil {
		return err
	}
	if !td.Isolated {
		logger.FromContext(ctx).Warn().
			Str("func", "dataOperator.HandleIsolatedEntity").
			Str("table", args.TableName.String()).
			Msg("table is not isolated")
		return &UnknownTableError{Table: args.TableName}
	}

	_, err = o.HandleEntity(ctx, args.TableName, HandleArgs{
		Values:        args.Values,
		OperationType: args.OperationType,
	})
	return err
}

func (o *dataOperator) HandleEntity(ctx context.Context, table models.TableName, args HandleArgs) ([]models.Descriptor, error) {
	td, err := lookupTable(table)
	if err != nil {
		return nil, err
	}
	if len(args.Values) == 0 {
		return nil, nil
	}

	db, err := o.database(ctx, td.Scope)
	if err != nil {
		return nil, err
	}

	descriptors, err := o.prepare(ctx, db, td, args.OperationType, args.Values)
	if err != nil {
		return nil, err
	}
	if args.PrepareRowsOnly {
		return descriptors, nil
	}

	if _, err = o.commit(ctx, db, td.Scope, descriptors); err != nil {
		return nil, err
	}
	return descriptors, nil
}

func (o *dataOperator) HandleUsers(ctx context.Context, args HandleArgs) ([]models.Descriptor, error) {
	return o.HandleEntity(ctx, models.TableUser, args)
}

func (o *dataOperator) HandlePreferences(ctx context.Context, args HandleArgs) ([]models.Descriptor, error) {
	return o.HandleEntity(ctx, models.TablePreference, args)
}

func (o *dataOperator) HandleTeamMemberships(ctx context.Context, args HandleArgs) ([]models.Descriptor, error) {
	return o.HandleEntity(ctx, models.TableTeamMembership, args)
}

func (o *dataOperator) HandleChannelMemberships(ctx context.Context, args HandleArgs) ([]models.Descriptor, error) {
	return o.HandleEntity(ctx, models.TableChannelMembership, args)
}

func (o *dataOperator) HandleGroupMemberships(ctx context.Context, args HandleArgs) ([]models.Descriptor, error) {
	return o.HandleEntity(ctx, models.TableGroupMembership, args)
}

func (o *dataOperator) HandleDrafts(ctx context.Context, args HandleArgs) ([]models.Descriptor, error) {
	return o.HandleEntity(ctx, models.TableDraft, args)
}
