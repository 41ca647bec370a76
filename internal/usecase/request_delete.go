package usecase

// DeleteRequest hard-deletes the request; the invoice foreign key
// cascades so any issued invoice goes with it. No ownership check.
func (uc *DefaultRequestUsecase) DeleteRequest(requestID string) error {
	if err := uc.RequestRepo.DeleteRequest(requestID); err != nil {
		return err
	}
	if uc.Metrics != nil {
		uc.Metrics.RequestsDeletedTotal.Inc()
	}
	return nil
}
