package parser

import (
	"github.com/pingcap/errors"
	"github.com/ryogrid/SamehadaQP/catalog"
	"github.com/ryogrid/SamehadaQP/common"
)

// CreateQueryEstimations copies statistics of each relation of qi from corpus.
// copies are owned by qi, so later changes of corpus side statistics are not visible
// to the optimizer. on error, qi is left without estimations.
func CreateQueryEstimations(qi *QueryInfo, corpus *catalog.RelationCorpus) error {
	common.SH_Assert(!qi.HasEstimations(), "estimations are already created")

	estimations := make([]*catalog.TableStatistics, 0, qi.GetNumOfRelations())
	for _, relId := range qi.RelationIds_ {
		rm, err := corpus.GetRelationByID(relId)
		if err != nil {
			common.ShPrintf(common.DEBUG_INFO, "CreateQueryEstimations: %v\n", err)
			return errors.Annotatef(err, "query %q", qi.String())
		}
		estimations = append(estimations, rm.GetStatistics().GetDeepCopy())
	}
	qi.Estimations_ = estimations

	return nil
}
